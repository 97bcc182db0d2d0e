package entity

// RawUpload is the transport receiver's output: the buffered, size-bounded
// multipart file plus everything the caller declared about it. RequestID is
// the trace id propagated through every later stage.
type RawUpload struct {
	Bytes            []byte
	DeclaredMimeType string
	DeclaredFilename string
	RequestID        string
}
