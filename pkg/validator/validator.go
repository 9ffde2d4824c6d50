package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func ValidateRegister(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	} else if len(password) > 128 {
		errs.Add("password", "Password is too long")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateCreatePet(name, description, sex string, age float64) ValidationErrors {
	errs := make(ValidationErrors)

	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "Name is required")
	} else if len(name) > 32 {
		errs.Add("name", "Name must not be longer than 32 characters")
	}

	if len(description) > 256 {
		errs.Add("description", "Description must not be longer than 256 characters")
	}

	if sex != "male" && sex != "female" {
		errs.Add("sex", `Sex must be either "male" or "female"`)
	}

	if age < 0 {
		errs.Add("age", "Age must not be negative")
	} else if age > 100 {
		errs.Add("age", "Age is out of range")
	}

	return errs
}

func ValidateUpdatePet(name, description, sex, status *string, age *float64) ValidationErrors {
	errs := make(ValidationErrors)

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			errs.Add("name", "Name must not be empty")
		} else if len(trimmed) > 32 {
			errs.Add("name", "Name must not be longer than 32 characters")
		}
	}

	if description != nil && len(*description) > 256 {
		errs.Add("description", "Description must not be longer than 256 characters")
	}

	if sex != nil && *sex != "male" && *sex != "female" {
		errs.Add("sex", `Sex must be either "male" or "female"`)
	}

	if status != nil && *status != "available" && *status != "pending" && *status != "adopted" {
		errs.Add("status", "Status must be available, pending or adopted")
	}

	if age != nil {
		if *age < 0 {
			errs.Add("age", "Age must not be negative")
		} else if *age > 100 {
			errs.Add("age", "Age is out of range")
		}
	}

	return errs
}

func ValidateCreateAdoption(message string) ValidationErrors {
	errs := make(ValidationErrors)

	if message == "" {
		errs.Add("message", "Message is required")
	} else if len(message) < 10 {
		errs.Add("message", "Message must be at least 10 characters")
	} else if len(message) > 1000 {
		errs.Add("message", "Message must not be longer than 1000 characters")
	}

	return errs
}

func ValidateAdoptionStatus(status string) ValidationErrors {
	errs := make(ValidationErrors)

	if status != "pending" && status != "approved" && status != "rejected" {
		errs.Add("status", "Status must be pending, approved or rejected")
	}

	return errs
}

// ValidatePetListQuery and ValidateAdoptionListQuery check the optional
// list filters; empty values mean the filter is unset.
func ValidatePetListQuery(status, sort string) ValidationErrors {
	errs := make(ValidationErrors)

	if status != "" && status != "available" && status != "pending" && status != "adopted" {
		errs.Add("status", "Status must be available, pending or adopted")
	}

	validateSort(sort, errs)

	return errs
}

func ValidateAdoptionListQuery(status, sort string) ValidationErrors {
	errs := make(ValidationErrors)

	if status != "" && status != "pending" && status != "approved" && status != "rejected" {
		errs.Add("status", "Status must be pending, approved or rejected")
	}

	validateSort(sort, errs)

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func validateSort(sort string, errs ValidationErrors) {
	if sort != "" && sort != "ASC" && sort != "DESC" {
		errs.Add("sort", "Sort must be ASC or DESC")
	}
}
