package file

const (
	SelectFiles = `
		SELECT id, originalname, filename, alt, destination, path, size, type_id
		FROM file
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectFileByID = `
		SELECT id, originalname, filename, alt, destination, path, size, type_id
		FROM file
		WHERE id = $1
	`
	SelectFileByPath = `
		SELECT id, originalname, filename, alt, destination, path, size, type_id
		FROM file
		WHERE path = $1
	`
	SelectFilesByType = `
		SELECT id, originalname, filename, alt, destination, path, size, type_id
		FROM file
		WHERE type_id = $1
	`
	InsertFile = `
		INSERT INTO file (originalname, filename, alt, destination, path, size, type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, originalname, filename, alt, destination, path, size, type_id
	`
	DeleteFileByID = `
		DELETE FROM file
		WHERE id = $1
	`
)
