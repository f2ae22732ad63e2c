package service

import (
	"errors"

	"netanyaRelay/internal/attachment"
	"netanyaRelay/internal/dispatch"
	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/downstream"
	"netanyaRelay/internal/validation"
)

const (
	msgSubmitted          = "Incident submitted successfully"
	msgSubmittedSimulated = "Incident submitted successfully (simulated)"
	msgValidation         = "Validation failed"
	msgTimeout            = "Ticketing service did not respond in time"
	msgUnavailable        = "Ticketing service is unavailable"
	msgRejected           = "Ticketing service rejected the submission"
	msgProtocol           = "Ticketing service returned an unexpected response"
	msgInternal           = "Incident submission failed"
)

var attachmentMessages = map[attachment.Reason]string{
	attachment.ReasonUnsupportedType:   "Unsupported file type",
	attachment.ReasonTooLarge:          "File exceeds the maximum allowed size",
	attachment.ReasonCorruptEncoding:   "File data is corrupt or does not match its declared size",
	attachment.ReasonSignatureMismatch: "File content does not match its declared type",
}

// Normalizer shapes every outcome into a SubmissionResult. With Debug set the
// downstream's own diagnostic text is appended to failure messages.
type Normalizer struct {
	Debug bool
}

func (n Normalizer) Success(correlationID string, out *dispatch.Outcome, file *attachment.MultipartFile) domain.SubmissionResult {
	res := domain.SubmissionResult{
		Success:       true,
		TicketID:      out.Response.Data,
		CorrelationID: correlationID,
		Message:       msgSubmitted,
		HasFile:       file != nil,
	}
	if out.Simulated {
		res.Message = msgSubmittedSimulated
	}
	if file != nil {
		res.FileInfo = &domain.FileInfo{
			Filename:    file.Filename,
			ContentType: file.ContentType,
			Size:        int64(len(file.Data)),
		}
	}
	return res
}

func (n Normalizer) Failure(correlationID string, sub domain.IncidentSubmission, err error) domain.SubmissionResult {
	return domain.SubmissionResult{
		Success:       false,
		CorrelationID: correlationID,
		Message:       n.message(err),
		HasFile:       sub.HasAttachment(),
	}
}

func (n Normalizer) message(err error) string {
	var (
		verr *validation.ValidationError
		aerr *attachment.Error
		derr *downstream.Error
	)
	switch {
	case errors.As(err, &verr):
		return msgValidation
	case errors.As(err, &aerr):
		if msg, ok := attachmentMessages[aerr.Reason]; ok {
			return msg
		}
		return msgInternal
	case errors.As(err, &derr):
		return n.downstreamMessage(derr)
	default:
		return msgInternal
	}
}

func (n Normalizer) downstreamMessage(derr *downstream.Error) string {
	var msg string
	switch {
	case derr.Timeout():
		msg = msgTimeout
	case derr.Kind == downstream.KindUnavailable:
		msg = msgUnavailable
	case derr.Kind == downstream.KindRejected:
		msg = msgRejected
	default:
		msg = msgProtocol
	}
	if n.Debug && derr.Detail != "" {
		msg += ": " + derr.Detail
	}
	return msg
}
