package domain

// IncidentSubmission is the citizen report accepted on the public endpoint.
type IncidentSubmission struct {
	UserData   UserData         `json:"user_data"`
	Category   Category         `json:"category"`
	Street     StreetNumber     `json:"street"`
	CustomText *string          `json:"custom_text,omitempty" validate:"omitempty,max=2000"`
	ExtraFiles *ImageAttachment `json:"extra_files,omitempty" validate:"omitempty"`
}

type UserData struct {
	FirstName string  `json:"first_name" validate:"notblank,max=100"`
	LastName  string  `json:"last_name" validate:"notblank,max=100"`
	Phone     string  `json:"phone" validate:"notblank,max=20"`
	UserID    *string `json:"user_id,omitempty" validate:"omitempty,max=20"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
}

type Category struct {
	ID            int    `json:"id" validate:"gte=0"`
	Name          string `json:"name" validate:"max=200"`
	Text          string `json:"text"`
	ImageURL      string `json:"image_url"`
	EventCallDesc string `json:"event_call_desc" validate:"max=2000"`
}

type StreetNumber struct {
	ID          int    `json:"id" validate:"gte=0"`
	Name        string `json:"name" validate:"max=200"`
	ImageURL    string `json:"image_url"`
	HouseNumber string `json:"house_number" validate:"notblank,max=10"`
}

// ImageAttachment carries one image as base64 text; Size is what the client
// claims, the processor checks it against the decoded bytes.
type ImageAttachment struct {
	Filename    string `json:"filename" validate:"notblank,max=255"`
	ContentType string `json:"content_type" validate:"notblank"`
	Size        int64  `json:"size" validate:"gte=0"`
	Data        string `json:"data" validate:"notblank"`
}

// HasAttachment reports whether the submission carries a file.
func (s IncidentSubmission) HasAttachment() bool {
	return s.ExtraFiles != nil
}
