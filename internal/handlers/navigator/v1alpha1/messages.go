package v1alpha1

import (
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser"
)

// Message field names
const (
	FieldUserID    = "user_id"
	FieldToken     = "token"
	FieldQuery     = "query"
	FieldDomain    = "domain"
	FieldRequestID = "request_id"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldImage     = "image"
	FieldCaption   = "caption"
	FieldNotice    = "notice"
	FieldChoices   = "choices"
	FieldLabel     = "label"
	FieldIssues    = "issues"
	FieldSource    = "source"
	FieldPath      = "path"
	FieldMessage   = "message"
	FieldResults   = "results"
	FieldName      = "name"
	FieldCount     = "count"
	FieldError     = "error"
	FieldLoadedAt  = "loaded_at"
)

// NavigateRequest is the decoded Navigate request
type NavigateRequest struct {
	UserID int64
	Token  string
	Query  string
	Domain catalog.Domain
}

// ToStruct encodes the request for the wire
func (r *NavigateRequest) ToStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		FieldUserID: strconv.FormatInt(r.UserID, 10),
		FieldToken:  r.Token,
		FieldQuery:  r.Query,
		FieldDomain: string(r.Domain),
	})
}

// ParseNavigateRequest decodes a Navigate request. Every field is optional.
func ParseNavigateRequest(in *structpb.Struct) (*NavigateRequest, error) {
	userID, err := UserID(in)
	if err != nil {
		return nil, err
	}

	req := &NavigateRequest{
		UserID: userID,
		Token:  stringField(in, FieldToken),
		Query:  stringField(in, FieldQuery),
		Domain: catalog.Domain(stringField(in, FieldDomain)),
	}
	if req.Domain != "" && !req.Domain.Valid() {
		return nil, errors.InvalidArgumentf("unknown domain %q", req.Domain)
	}
	return req, nil
}

// UserIDRequest encodes a request carrying only the caller identity
func UserIDRequest(userID int64) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{FieldUserID: strconv.FormatInt(userID, 10)})
}

// UserID reads user_id as a decimal string or a whole number. A missing id is 0.
func UserID(in *structpb.Struct) (int64, error) {
	v, ok := in.GetFields()[FieldUserID]
	if !ok {
		return 0, nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		if kind.StringValue == "" {
			return 0, nil
		}
		id, err := strconv.ParseInt(kind.StringValue, 10, 64)
		if err != nil {
			return 0, errors.InvalidArgumentf("user_id %q is not an integer", kind.StringValue)
		}
		return id, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, errors.InvalidArgumentf("user_id %v is not an integer", n)
		}
		return int64(n), nil
	case *structpb.Value_NullValue:
		return 0, nil
	}
	return 0, errors.InvalidArgument("user_id must be a string or a number")
}

func stringField(in *structpb.Struct, name string) string {
	return in.GetFields()[name].GetStringValue()
}

// ScreenToStruct encodes a screen, tagged with the request id
func ScreenToStruct(screen *browser.Screen, requestID string) (*structpb.Struct, error) {
	return structpb.NewStruct(screenFields(screen, requestID))
}

func screenFields(screen *browser.Screen, requestID string) map[string]any {
	rows := make([]any, 0, len(screen.Choices))
	for _, row := range screen.Choices {
		choices := make([]any, 0, len(row))
		for _, c := range row {
			choices = append(choices, map[string]any{FieldLabel: c.Label, FieldToken: c.Token})
		}
		rows = append(rows, choices)
	}

	return map[string]any{
		FieldRequestID: requestID,
		FieldTitle:     screen.Title,
		FieldBody:      screen.Body,
		FieldImage:     screen.Image,
		FieldCaption:   screen.Caption,
		FieldNotice:    screen.Notice,
		FieldChoices:   rows,
	}
}

// ScreenFromStruct decodes a screen sent by ScreenToStruct
func ScreenFromStruct(in *structpb.Struct) *browser.Screen {
	screen := &browser.Screen{
		Title:   stringField(in, FieldTitle),
		Body:    stringField(in, FieldBody),
		Image:   stringField(in, FieldImage),
		Caption: stringField(in, FieldCaption),
		Notice:  stringField(in, FieldNotice),
	}

	for _, row := range in.GetFields()[FieldChoices].GetListValue().GetValues() {
		var choices []browser.Choice
		for _, c := range row.GetListValue().GetValues() {
			fields := c.GetStructValue()
			choices = append(choices, browser.Choice{
				Label: stringField(fields, FieldLabel),
				Token: stringField(fields, FieldToken),
			})
		}
		screen.Choices = append(screen.Choices, choices)
	}
	return screen
}

// IssuesFromStruct decodes the issues of a Validate response
func IssuesFromStruct(in *structpb.Struct) []errors.Issue {
	values := in.GetFields()[FieldIssues].GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}

	issues := make([]errors.Issue, 0, len(values))
	for _, v := range values {
		fields := v.GetStructValue()
		issues = append(issues, errors.Issue{
			Source:  stringField(fields, FieldSource),
			Path:    stringField(fields, FieldPath),
			Message: stringField(fields, FieldMessage),
		})
	}
	return issues
}
