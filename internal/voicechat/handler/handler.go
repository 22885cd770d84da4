package handler

import (
	"fmt"
	"io"
	"net/http"

	"clientbridge-server/internal/apierrors"
	"clientbridge-server/internal/observability"
	"clientbridge-server/internal/voicechat/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor *processor.Processor
	logger    *observability.Logger
}

func New(processor *processor.Processor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TranscribeResponse is the payload for a completed voice chat round-trip.
// Audio is null unless speech synthesis produced an audio reply.
type TranscribeResponse struct {
	Transcript string  `json:"transcript"`
	Response   string  `json:"response"`
	Audio      *string `json:"audio"`
}

// HandleTranscribe handles POST /api/transcribe
func (h *Handler) HandleTranscribe(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		h.logger.Error(ctx, "no audio file in upload", err)
		apierrors.RespondWithError(c, processor.ErrNoAudioFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded audio", err)
		apierrors.RespondWithError(c, fmt.Errorf("%w: %s", processor.ErrTranscriptionFailed, err.Error()))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error(ctx, "failed to read uploaded audio", err)
		apierrors.RespondWithError(c, fmt.Errorf("%w: %s", processor.ErrTranscriptionFailed, err.Error()))
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "upload_filename", Value: fileHeader.Filename})

	result, err := h.processor.ProcessRecording(ctx, audio, fileHeader.Filename)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TranscribeResponse{
		Transcript: result.Transcript,
		Response:   result.Response,
		Audio:      result.Audio,
	})
}
