package filetype

const (
	SelectFileTypes = `
		SELECT id, name, type, mime_type
		FROM file_type
	`
	SelectFileTypeByName = `
		SELECT id, name, type, mime_type
		FROM file_type
		WHERE name = $1
	`
	InsertFileType = `
		INSERT INTO file_type (name, type, mime_type)
		VALUES ($1, $2, $3)
		RETURNING
		  id, name, type, mime_type
	`
	DeleteFileTypeByName = `
		DELETE FROM file_type
		WHERE name = $1
	`
	CountFilesByType = `
		SELECT COUNT(*) FROM file WHERE type_id = $1
	`
)
