package processor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clientbridge-server/internal/email"
	"clientbridge-server/internal/observability"

	"go.uber.org/mock/gomock"
)

func TestNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := observability.NewLogger()
	ctx := context.Background()

	formSubmission := Submission{
		FullName:      "Jane Doe",
		Email:         "jane@x.com",
		BusinessGoals: "grow online sales",
		Budget:        5000,
		ContactMethod: "Email",
	}

	t.Run("form submission sends both emails", func(t *testing.T) {
		mockEmail := NewMockNotificationEmailService(ctrl)
		p := New(mockEmail, "sales@clientbridge.io", logger)

		mockEmail.EXPECT().
			SendConsultationConfirmation(gomock.Any(), "jane@x.com", gomock.Any()).
			Return(nil)
		mockEmail.EXPECT().
			SendConsultationNotification(gomock.Any(), "sales@clientbridge.io", gomock.Any()).
			Return(nil)

		result, err := p.Notify(ctx, formSubmission)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.ClientSent || !result.InternalSent {
			t.Errorf("expected both deliveries, got %+v", result)
		}
		if len(result.Errors) != 0 {
			t.Errorf("expected no errors, got %v", result.Errors)
		}
	})

	t.Run("duplicate submissions send duplicate emails", func(t *testing.T) {
		mockEmail := NewMockNotificationEmailService(ctrl)
		p := New(mockEmail, "sales@clientbridge.io", logger)

		mockEmail.EXPECT().
			SendConsultationConfirmation(gomock.Any(), "jane@x.com", gomock.Any()).
			Return(nil).Times(2)
		mockEmail.EXPECT().
			SendConsultationNotification(gomock.Any(), "sales@clientbridge.io", gomock.Any()).
			Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := p.Notify(ctx, formSubmission); err != nil {
				t.Fatalf("unexpected error on attempt %d: %v", i+1, err)
			}
		}
	})

	t.Run("form submission carries template data through", func(t *testing.T) {
		mockEmail := NewMockNotificationEmailService(ctrl)
		p := New(mockEmail, "sales@clientbridge.io", logger)

		expectedData := email.TemplateData{
			FullName:      "Jane Doe",
			Email:         "jane@x.com",
			BusinessGoals: "grow online sales",
			Budget:        5000,
			ContactMethod: "Email",
		}
		mockEmail.EXPECT().
			SendConsultationConfirmation(gomock.Any(), "jane@x.com", expectedData).
			Return(nil)
		mockEmail.EXPECT().
			SendConsultationNotification(gomock.Any(), "sales@clientbridge.io", expectedData).
			Return(nil)

		if _, err := p.Notify(ctx, formSubmission); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("partial failure reports surviving delivery", func(t *testing.T) {
		mockEmail := NewMockNotificationEmailService(ctrl)
		p := New(mockEmail, "sales@clientbridge.io", logger)

		mockEmail.EXPECT().
			SendConsultationConfirmation(gomock.Any(), "jane@x.com", gomock.Any()).
			Return(errors.New("relay rejected recipient"))
		mockEmail.EXPECT().
			SendConsultationNotification(gomock.Any(), "sales@clientbridge.io", gomock.Any()).
			Return(nil)

		result, err := p.Notify(ctx, formSubmission)
		if !errors.Is(err, ErrDeliveryFailed) {
			t.Fatalf("expected ErrDeliveryFailed, got %v", err)
		}
		if result.ClientSent {
			t.Error("client delivery should be reported failed")
		}
		if !result.InternalSent {
			t.Error("internal delivery should be reported sent")
		}
		if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "relay rejected recipient") {
			t.Errorf("expected one delivery error, got %v", result.Errors)
		}
	})

	t.Run("voice session sends single internal notification", func(t *testing.T) {
		mockEmail := NewMockNotificationEmailService(ctrl)
		p := New(mockEmail, "sales@clientbridge.io", logger)

		mockEmail.EXPECT().
			SendVoiceSessionNotification(gomock.Any(), "sales@clientbridge.io", gomock.Any()).
			Return(nil)

		result, err := p.Notify(ctx, Submission{Transcript: "hello", AgentResponse: "hi there"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ClientSent {
			t.Error("voice session should not attempt a client confirmation")
		}
		if !result.InternalSent {
			t.Error("expected internal notification to be sent")
		}
	})

	t.Run("empty submission makes no delivery attempt", func(t *testing.T) {
		mockEmail := NewMockNotificationEmailService(ctrl)
		p := New(mockEmail, "sales@clientbridge.io", logger)

		_, err := p.Notify(ctx, Submission{})
		if !errors.Is(err, ErrEmptyNotification) {
			t.Fatalf("expected ErrEmptyNotification, got %v", err)
		}
	})

	t.Run("form without client email is treated as voice session", func(t *testing.T) {
		mockEmail := NewMockNotificationEmailService(ctrl)
		p := New(mockEmail, "sales@clientbridge.io", logger)

		mockEmail.EXPECT().
			SendVoiceSessionNotification(gomock.Any(), "sales@clientbridge.io", gomock.Any()).
			Return(nil)

		result, err := p.Notify(ctx, Submission{Transcript: "I need a consultation"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.InternalSent {
			t.Error("expected internal notification to be sent")
		}
	})
}
