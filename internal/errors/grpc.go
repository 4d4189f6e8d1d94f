package errors

import (
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain is reported in ErrorInfo details so clients can tell our codes
// apart from codes produced by the transport itself.
const errorDomain = "rpg-codex"

// issueFieldSep joins Issue.Source and Issue.Path inside a BadRequest field violation
const issueFieldSep = "|"

// ToGRPCError converts an error to a gRPC status error. The precise code is
// sent as ErrorInfo.Reason and issues travel as BadRequest field violations.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	info := &errdetails.ErrorInfo{
		Reason:   string(customErr.Code),
		Domain:   errorDomain,
		Metadata: make(map[string]string, len(customErr.Meta)),
	}
	for k, v := range customErr.Meta {
		if k == metaIssues {
			continue
		}
		info.Metadata[k] = fmt.Sprint(v)
	}
	if withInfo, detailErr := st.WithDetails(info); detailErr == nil {
		st = withInfo
	}

	if issues := GetIssues(err); len(issues) > 0 {
		br := &errdetails.BadRequest{}
		for _, issue := range issues {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       issue.Source + issueFieldSep + issue.Path,
				Description: issue.Message,
			})
		}
		if withIssues, detailErr := st.WithDetails(br); detailErr == nil {
			st = withIssues
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == errorDomain && d.GetReason() != "" {
				customErr.Code = Code(d.GetReason())
			}
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			issues := make([]Issue, 0, len(d.GetFieldViolations()))
			for _, fv := range d.GetFieldViolations() {
				source, path, _ := strings.Cut(fv.GetField(), issueFieldSep)
				issues = append(issues, Issue{Source: source, Path: path, Message: fv.GetDescription()})
			}
			customErr.WithMeta(metaIssues, issues)
		}
	}

	return customErr
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument, CodeInvalidToken:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeFailedPrecondition, CodeSchemaViolation:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable, CodeSourceUnavailable:
		return codes.Unavailable
	case CodeParseFailure:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeParseFailure
	default:
		return CodeInternal
	}
}
