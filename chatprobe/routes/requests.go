package routes

import (
	"errors"
	"reflect"
	"strings"

	"chatprobe/chatprobe/types"

	"github.com/go-playground/validator/v10"
)

// Request bodies. Pointers tell a missing field from an empty one:
// "required" rejects nil but accepts "".
type signupRequest struct {
	Username *string `json:"username" validate:"required"`
}

type createChatRequest struct {
	UserID *string `json:"user_id" validate:"required"`
}

type createMessageRequest struct {
	ChatID  *string `json:"chat_id" validate:"required"`
	Sender  *string `json:"sender" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateBody checks req against its validate tags. Failures come back as
// one issue per field, in field order, located under "body".
func validateBody(req any) error {
	return toIssues(validate.Struct(req), func(fe validator.FieldError) []string {
		return []string{"body", fe.Field()}
	})
}

// validatePath checks a single path value against tag, e.g. "required,uuid".
func validatePath(name, value, tag string) error {
	return toIssues(validate.Var(value, tag), func(validator.FieldError) []string {
		return []string{"path", name}
	})
}

func toIssues(err error, loc func(validator.FieldError) []string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	issues := make([]types.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, issue(loc(fe), fe.Tag()))
	}
	return &errValidation{issues: issues}
}

func issue(loc []string, tag string) types.ValidationIssue {
	switch tag {
	case "required":
		return types.ValidationIssue{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	case "uuid":
		return types.ValidationIssue{Loc: loc, Msg: "value is not a valid uuid", Type: "type_error.uuid"}
	default:
		return types.ValidationIssue{Loc: loc, Msg: "failed on " + tag, Type: "value_error." + tag}
	}
}
