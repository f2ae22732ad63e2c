package formdata

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"netanyaRelay/internal/attachment"
	"netanyaRelay/internal/domain"
)

// JSONField is the form field incidents.ashx reads the payload from.
const JSONField = "json"

const (
	BoundaryPrefix = "----WebKitFormBoundary"
	boundaryLen    = 16
	boundaryChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Headers the municipality handler checks before accepting a submission.
const (
	Origin         = "https://www.netanya.muni.il"
	Referer        = "https://www.netanya.muni.il/CityHall/ServicesInnovation/Pages/PublicComplaints.aspx"
	RequestedWith  = "XMLHttpRequest"
	UserAgent      = "Mozilla/5.0 (compatible; NetanyaIncidentService/1.0)"
	Accept         = "application/json;odata=verbose"
	AcceptLanguage = "he-IL,he;q=0.9,en-US;q=0.8"
)

// Request is a ready-to-send multipart body with its headers.
type Request struct {
	Body     []byte
	Boundary string
	Header   http.Header
}

func (r *Request) ContentType() string {
	return r.Header.Get("Content-Type")
}

type BoundaryFunc func() string

type Builder struct {
	boundary BoundaryFunc
}

// NewBuilder uses random WebKit-style boundaries when boundary is nil.
func NewBuilder(boundary BoundaryFunc) *Builder {
	if boundary == nil {
		boundary = WebKitBoundary
	}
	return &Builder{boundary: boundary}
}

// Build serializes the payload into the "json" part followed by one part per
// file, in order. Nil files are skipped.
func (b *Builder) Build(payload domain.DownstreamPayload, files ...*attachment.MultipartFile) (*Request, error) {
	boundary := b.boundary()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.SetBoundary(boundary); err != nil {
		return nil, fmt.Errorf("set boundary %q: %w", boundary, err)
	}

	js, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}
	jsonPart, err := w.CreateFormField(JSONField)
	if err != nil {
		return nil, fmt.Errorf("create json part: %w", err)
	}
	if _, err := jsonPart.Write(js); err != nil {
		return nil, fmt.Errorf("write json part: %w", err)
	}

	for _, f := range files {
		if f == nil {
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(f.FieldName), escapeQuotes(f.Filename)))
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	return &Request{
		Body:     body.Bytes(),
		Boundary: boundary,
		Header:   staticHeaders(w.FormDataContentType()),
	}, nil
}

func staticHeaders(contentType string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", contentType)
	h.Set("Origin", Origin)
	h.Set("Referer", Referer)
	h.Set("X-Requested-With", RequestedWith)
	h.Set("User-Agent", UserAgent)
	h.Set("Accept", Accept)
	h.Set("Accept-Language", AcceptLanguage)
	return h
}

// encodePayload keeps Hebrew and '&' as-is, the handler does not unescape.
func encodePayload(p domain.DownstreamPayload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "%0D", "\n", "%0A")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// WebKitBoundary mimics the boundary Chrome and Safari put on form posts.
func WebKitBoundary() string {
	var sb strings.Builder
	sb.Grow(len(BoundaryPrefix) + boundaryLen)
	sb.WriteString(BoundaryPrefix)
	limit := big.NewInt(int64(len(boundaryChars)))
	for i := 0; i < boundaryLen; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
		}
		sb.WriteByte(boundaryChars[n.Int64()])
	}
	return sb.String()
}
