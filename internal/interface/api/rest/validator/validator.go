package validator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"file-storage-api/internal/interface/api/rest/dto/filetype"
)

var nameTokenRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)

func ValidatePage(page string) (int, error) {
	p := 1
	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			return p, errors.New("invalid page")
		}
		return p, nil
	}

	return p, nil
}

func ValidateID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}

	return id, nil
}

// ValidateRoute accepts a single clean path segment: routes become
// directory names under the storage root and must not traverse it.
func ValidateRoute(route string) error {
	route = strings.TrimSpace(route)
	if route == "" {
		return errors.New("route is required")
	}
	if route == "." || route == ".." {
		return errors.New("route must not be a dot segment")
	}
	if strings.ContainsAny(route, `/\`) {
		return errors.New("route must be a single path segment")
	}

	return nil
}

// ValidateSelector accepts "all" (any case) or a relative path of clean
// segments: selectors resolve to directories under the storage root and
// must not traverse out of it.
func ValidateSelector(selector string) error {
	if strings.EqualFold(selector, "all") {
		return nil
	}
	if strings.ContainsRune(selector, '\\') {
		return errors.New("selector must use forward slashes")
	}
	for _, seg := range strings.Split(selector, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return errors.New("selector must not contain empty or dot segments")
		}
	}

	return nil
}

func ValidateFileType(r filetype.Request) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	typ := strings.TrimSpace(r.Type)

	if name == "" {
		errs["name"] = "name is required"
	} else if !nameTokenRe.MatchString(name) {
		errs["name"] = "allowed characters: lowercase letters, digits, '.', '_', '-'"
	}

	if typ == "" {
		errs["type"] = "type is required"
	} else if strings.ContainsAny(typ, `/\`) || typ == "." || typ == ".." {
		errs["type"] = "type must be a single path segment"
	}

	if r.MimeType != nil {
		mt := strings.TrimSpace(*r.MimeType)
		if mt == "" || !strings.Contains(mt, "/") {
			errs["mime_type"] = "must look like type/subtype"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
