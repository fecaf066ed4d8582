package factory

import "testing"

func TestNewSttProvider(t *testing.T) {
	tests := []struct {
		providerType string
		wantErr      bool
	}{
		{"deepgram", false},
		{"assemblyai", false},
		{"whisper", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.providerType, func(t *testing.T) {
			p, err := NewSttProvider(tt.providerType, "dg-key", "aai-key")
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewSttProvider(%q) expected error", tt.providerType)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSttProvider(%q) error: %v", tt.providerType, err)
			}
			if p == nil {
				t.Fatalf("NewSttProvider(%q) returned nil provider", tt.providerType)
			}
		})
	}
}
