package responses

type Upload struct {
	ObjectName string `json:"object_name"`
	Bucket     string `json:"bucket"`
	Size       int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

type UploadURL struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	ExpiresIn  int    `json:"expires_in"`
}
