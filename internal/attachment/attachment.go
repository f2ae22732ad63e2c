package attachment

import (
	"encoding/base64"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"netanyaRelay/internal/domain"
)

// FieldName is the form field the ticketing handler reads the file from.
const FieldName = "attachment"

const DefaultMaxBytes int64 = 10 * 1024 * 1024

// SupportedTypes is the full allow-list; Limits.AllowedTypes may narrow it.
var SupportedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type Reason string

const (
	ReasonUnsupportedType   Reason = "unsupported_type"
	ReasonTooLarge          Reason = "too_large"
	ReasonCorruptEncoding   Reason = "corrupt_encoding"
	ReasonSignatureMismatch Reason = "signature_mismatch"
)

type Error struct {
	Reason  Reason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("attachment %s: %s: %v", e.Reason, e.Message, e.Cause)
	}
	return fmt.Sprintf("attachment %s: %s", e.Reason, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// MultipartFile is a decoded attachment ready for the form body.
type MultipartFile struct {
	FieldName   string
	Filename    string
	ContentType string
	Data        []byte
}

type Limits struct {
	MaxBytes      int64
	SizeTolerance int64
	AllowedTypes  []string
}

type Processor struct {
	limits  Limits
	allowed map[string]bool
}

func NewProcessor(limits Limits) *Processor {
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = DefaultMaxBytes
	}
	if limits.SizeTolerance < 0 {
		limits.SizeTolerance = 0
	}
	types := limits.AllowedTypes
	if len(types) == 0 {
		types = SupportedTypes
	}
	allowed := make(map[string]bool, len(types))
	for _, t := range types {
		allowed[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return &Processor{limits: limits, allowed: allowed}
}

// Process validates and decodes the attachment. A nil attachment yields a
// nil file and no error.
func (p *Processor) Process(att *domain.ImageAttachment) (*MultipartFile, error) {
	if att == nil {
		return nil, nil
	}

	declared, err := p.declaredType(att.ContentType)
	if err != nil {
		return nil, err
	}

	if att.Size > p.limits.MaxBytes {
		return nil, p.tooLarge(att.Size)
	}
	// refuse to decode a string that cannot fit under the ceiling
	if int64(len(att.Data)) > int64(base64.StdEncoding.EncodedLen(int(p.limits.MaxBytes)))+4 {
		return nil, p.tooLarge(int64(base64.StdEncoding.DecodedLen(len(att.Data))))
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(att.Data))
	if err != nil {
		return nil, &Error{Reason: ReasonCorruptEncoding, Message: "data is not valid base64", Cause: err}
	}
	if len(data) == 0 {
		return nil, &Error{Reason: ReasonCorruptEncoding, Message: "file is empty"}
	}
	if int64(len(data)) > p.limits.MaxBytes {
		return nil, p.tooLarge(int64(len(data)))
	}
	if diff := int64(len(data)) - att.Size; diff > p.limits.SizeTolerance || -diff > p.limits.SizeTolerance {
		return nil, &Error{
			Reason:  ReasonCorruptEncoding,
			Message: fmt.Sprintf("declared size %d does not match decoded size %d", att.Size, len(data)),
		}
	}

	detected := mimetype.Detect(data)
	if !detected.Is(declared) {
		return nil, &Error{
			Reason:  ReasonSignatureMismatch,
			Message: fmt.Sprintf("declared %s but content is %s", declared, detected.String()),
		}
	}

	return &MultipartFile{
		FieldName:   FieldName,
		Filename:    cleanFilename(att.Filename),
		ContentType: declared,
		Data:        data,
	}, nil
}

func (p *Processor) declaredType(raw string) (string, error) {
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return "", &Error{Reason: ReasonUnsupportedType, Message: fmt.Sprintf("unsupported content type %q", raw), Cause: err}
	}
	mt = strings.ToLower(mt)
	if !p.allowed[mt] {
		return "", &Error{Reason: ReasonUnsupportedType, Message: fmt.Sprintf("unsupported content type %q", mt)}
	}
	return mt, nil
}

func (p *Processor) tooLarge(size int64) error {
	return &Error{
		Reason:  ReasonTooLarge,
		Message: fmt.Sprintf("file size %d exceeds limit of %d bytes", size, p.limits.MaxBytes),
	}
}

// cleanFilename keeps the base name only; clients on Windows send backslashes.
// Control characters become '_' so the name cannot break the part header.
func cleanFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return '_'
		}
		return r
	}, name)
	name = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	base := path.Base(name)
	if base == "." || base == "/" {
		return "attachment"
	}
	return base
}
