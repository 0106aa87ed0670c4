package response

import "errors"

type Response struct {
	ResponseError `json:"error,omitzero"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

//Error Codes
type ErrCode string

var (
	FAILED_REQUEST  ErrCode = "REQUEST_FAILED"
	BAD_REQUEST     ErrCode = "FAILED_TO_DECODE"
	NOT_FOUND       ErrCode = "NOT_FOUND"
	LOCKED          ErrCode = "LOCKED"
	CONFLICT        ErrCode = "CONFLICT"
	RECORD_OPEN     ErrCode = "TIME_RECORD_OPEN"
	NO_OPEN_RECORD  ErrCode = "NO_OPEN_TIME_RECORD"
	SUMMARY_FAILED  ErrCode = "SUMMARY_FAILED"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("resource not found")
	ErrLocked           = errors.New("resource is locked")
	ErrConflict         = errors.New("conflict")
	ErrTimeRecordOpen   = errors.New("time record already open")
	ErrNoOpenTimeRecord = errors.New("no open time record")
)

func Error(code, msg string) Response {
	return Response{
		ResponseError: ResponseError{
			Code:    code,
			Message: msg,
		},
	}
}
