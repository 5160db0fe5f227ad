package notifications

import "testing"

func TestNewPayload_RecipientNameFallback(t *testing.T) {
	svc := &BrevoService{SenderName: "Health Connect", SenderEmail: "no-reply@healthconnect.example"}

	payload, err := svc.newPayload("", "jane.doe@email.com", "Welcome", "<p>hi</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.To) != 1 {
		t.Fatalf("expected one recipient, got %d", len(payload.To))
	}
	if payload.To[0].Name != "jane.doe" {
		t.Errorf("expected mailbox-name fallback jane.doe, got %q", payload.To[0].Name)
	}
	if payload.Sender.Email != "no-reply@healthconnect.example" {
		t.Errorf("unexpected sender %q", payload.Sender.Email)
	}
}

func TestNewPayload_KeepsExplicitName(t *testing.T) {
	svc := &BrevoService{SenderName: "Health Connect", SenderEmail: "no-reply@healthconnect.example"}

	payload, err := svc.newPayload("Jane Doe", "jane.doe@email.com", "Welcome", "<p>hi</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.To[0].Name != "Jane Doe" {
		t.Errorf("expected explicit name to win, got %q", payload.To[0].Name)
	}
}

func TestNewPayload_RejectsInvalidEmail(t *testing.T) {
	svc := &BrevoService{}

	for _, email := range []string{"", "not-an-email", "@nodomain"} {
		if _, err := svc.newPayload("Jane", email, "Welcome", "<p>hi</p>"); err == nil {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}
