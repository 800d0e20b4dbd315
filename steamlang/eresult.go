package steamlang

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// EResult is Steam's result code, reported by service interfaces in the
// X-eresult response header.
type EResult int

//goland:noinspection GoUnusedConst
const (
	InvalidResult                   EResult = 0
	OKResult                        EResult = 1
	FailResult                      EResult = 2
	NoConnectionResult              EResult = 3
	InvalidPasswordResult           EResult = 5
	InvalidParamResult              EResult = 8
	FileNotFoundResult              EResult = 9
	BusyResult                      EResult = 10
	InvalidStateResult              EResult = 11
	AccessDeniedResult              EResult = 15
	TimeoutResult                   EResult = 16
	BannedResult                    EResult = 17
	AccountNotFoundResult           EResult = 18
	InvalidSteamIDResult            EResult = 19
	ServiceUnavailableResult        EResult = 20
	NotLoggedOnResult               EResult = 21
	InsufficientPrivilegeResult     EResult = 24
	LimitExceededResult             EResult = 25
	RevokedResult                   EResult = 26
	ExpiredResult                   EResult = 27
	DuplicateRequestResult          EResult = 29
	NoMatchResult                   EResult = 42
	ServiceReadOnlyResult           EResult = 44
	RemoteCallFailedResult          EResult = 55
	BadResponseResult               EResult = 76
	ValueOutOfRangeResult           EResult = 78
	UnexpectedErrorResult           EResult = 79
	DisabledResult                  EResult = 80
	RestrictedDeviceResult          EResult = 82
	RegionLockedResult              EResult = 83
	RateLimitExceededResult         EResult = 84
	ItemOrEntryHasBeenDeletedResult EResult = 86
	NotModifiedResult               EResult = 91
	TooManyPendingResult            EResult = 108
	InvalidSignatureResult          EResult = 121
	ParseFailureResult              EResult = 122
)

var resultNames = map[EResult]string{
	InvalidResult:                   "Invalid",
	OKResult:                        "OK",
	FailResult:                      "Fail",
	NoConnectionResult:              "NoConnection",
	InvalidPasswordResult:           "InvalidPassword",
	InvalidParamResult:              "InvalidParam",
	FileNotFoundResult:              "FileNotFound",
	BusyResult:                      "Busy",
	InvalidStateResult:              "InvalidState",
	AccessDeniedResult:              "AccessDenied",
	TimeoutResult:                   "Timeout",
	BannedResult:                    "Banned",
	AccountNotFoundResult:           "AccountNotFound",
	InvalidSteamIDResult:            "InvalidSteamID",
	ServiceUnavailableResult:        "ServiceUnavailable",
	NotLoggedOnResult:               "NotLoggedOn",
	InsufficientPrivilegeResult:     "InsufficientPrivilege",
	LimitExceededResult:             "LimitExceeded",
	RevokedResult:                   "Revoked",
	ExpiredResult:                   "Expired",
	DuplicateRequestResult:          "DuplicateRequest",
	NoMatchResult:                   "NoMatch",
	ServiceReadOnlyResult:           "ServiceReadOnly",
	RemoteCallFailedResult:          "RemoteCallFailed",
	BadResponseResult:               "BadResponse",
	ValueOutOfRangeResult:           "ValueOutOfRange",
	UnexpectedErrorResult:           "UnexpectedError",
	DisabledResult:                  "Disabled",
	RestrictedDeviceResult:          "RestrictedDevice",
	RegionLockedResult:              "RegionLocked",
	RateLimitExceededResult:         "RateLimitExceeded",
	ItemOrEntryHasBeenDeletedResult: "ItemOrEntryHasBeenDeleted",
	NotModifiedResult:               "NotModified",
	TooManyPendingResult:            "TooManyPending",
	InvalidSignatureResult:          "InvalidSignature",
	ParseFailureResult:              "ParseFailure",
}

func (r EResult) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("EResult(%d)", int(r))
}

// IsSuccessStatus reports whether the HTTP status is in the 2xx range.
func IsSuccessStatus(response *http.Response) bool {
	return response.StatusCode >= 200 && response.StatusCode < 300
}

// ResponseResult reads the X-eresult header. The second return value is false
// when the header is missing or holds no parsable value.
func ResponseResult(httpResponse *http.Response) (EResult, bool) {
	eResults := httpResponse.Header.Values("X-Eresult")
	for _, result := range eResults {
		if parsedResult, parseErr := strconv.ParseInt(strings.TrimSpace(result), 10, 64); parseErr == nil {
			return EResult(parsedResult), true
		}
	}

	return InvalidResult, false
}

// ResponseErrorMessage joins any X-error_message headers Steam attached.
func ResponseErrorMessage(httpResponse *http.Response) string {
	return strings.Join(httpResponse.Header.Values("X-Error_message"), "; ")
}
