package errors

// ErrorCode identifies an application error independent of its HTTP status
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	// General
	ErrorCode_INTERNAL ErrorCode = 1000

	// Transcription
	ErrorCode_FILE_NOT_FOUND       ErrorCode = 2000
	ErrorCode_NO_FILE_UPLOADED     ErrorCode = 2001
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 2002
	ErrorCode_INVALID_CHUNK_CONFIG ErrorCode = 2003
	ErrorCode_FILE_TOO_LARGE       ErrorCode = 2004

	// Question generation
	ErrorCode_INVALID_SEGMENTS  ErrorCode = 3000
	ErrorCode_GENERATION_FAILED ErrorCode = 3001

	// Processing jobs
	ErrorCode_JOB_NOT_FOUND     ErrorCode = 4000
	ErrorCode_UPLOAD_FAILED     ErrorCode = 4001
	ErrorCode_PROCESSING_FAILED ErrorCode = 4002

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_FILE_NOT_FOUND:             "FILE_NOT_FOUND",
	ErrorCode_NO_FILE_UPLOADED:           "NO_FILE_UPLOADED",
	ErrorCode_TRANSCRIPTION_FAILED:       "TRANSCRIPTION_FAILED",
	ErrorCode_INVALID_CHUNK_CONFIG:       "INVALID_CHUNK_CONFIG",
	ErrorCode_FILE_TOO_LARGE:             "FILE_TOO_LARGE",
	ErrorCode_INVALID_SEGMENTS:           "INVALID_SEGMENTS",
	ErrorCode_GENERATION_FAILED:          "GENERATION_FAILED",
	ErrorCode_JOB_NOT_FOUND:              "JOB_NOT_FOUND",
	ErrorCode_UPLOAD_FAILED:              "UPLOAD_FAILED",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
