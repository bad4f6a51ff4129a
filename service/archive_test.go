package service

import (
	"testing"

	"github.com/Contak-cpu/inmob-sub001/config"
	"github.com/Contak-cpu/inmob-sub001/model"
)

func TestNewArchiveService(t *testing.T) {
	cfg := &config.ArchiveConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "documentos",
		UseSSL:    false,
	}

	svc, err := NewArchiveService(cfg)
	// Client creation does not connect; the endpoint is only validated
	// syntactically
	if err != nil {
		t.Fatalf("NewArchiveService failed: %v", err)
	}
	if svc == nil {
		t.Fatal("Expected non-nil service")
	}
}

func TestNewArchiveServiceInvalidEndpoint(t *testing.T) {
	cfg := &config.ArchiveConfig{
		Endpoint: "http://not a valid endpoint",
	}

	if _, err := NewArchiveService(cfg); err == nil {
		t.Error("Expected error for invalid endpoint")
	}
}

func TestObjectKey(t *testing.T) {
	doc := &model.Document{
		ID:      "abc-123",
		Kind:    model.KindReceipt,
		Subtype: "rent",
		Office:  "centro",
	}

	expected := "centro/abc-123/receipt-rent.txt"
	if got := ObjectKey(doc); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestGetPublicURL(t *testing.T) {
	tests := []struct {
		name       string
		useSSL     bool
		endpoint   string
		bucket     string
		objectName string
		expected   string
	}{
		{
			name:       "http url",
			useSSL:     false,
			endpoint:   "localhost:9000",
			bucket:     "documentos",
			objectName: "centro/abc/contract-comercial.txt",
			expected:   "http://localhost:9000/documentos/centro/abc/contract-comercial.txt",
		},
		{
			name:       "https url",
			useSSL:     true,
			endpoint:   "minio.example.com",
			bucket:     "documentos",
			objectName: "norte/xyz/receipt-rent.txt",
			expected:   "https://minio.example.com/documentos/norte/xyz/receipt-rent.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ArchiveConfig{
				Endpoint:  tt.endpoint,
				AccessKey: "k",
				SecretKey: "s",
				Bucket:    tt.bucket,
				UseSSL:    tt.useSSL,
			}
			svc, err := NewArchiveService(cfg)
			if err != nil {
				t.Fatalf("NewArchiveService failed: %v", err)
			}

			if got := svc.GetPublicURL(tt.objectName); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}
