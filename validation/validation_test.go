package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/xappkit/errors"
)

type probeConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Interval int    `mapstructure:"interval" validate:"min=1,max=3600"`
	Mode     string `mapstructure:"mode" validate:"omitempty,oneof=report insert"`
}

func TestValidateStructPasses(t *testing.T) {
	cfg := probeConfig{Name: "kpimon", Interval: 10, Mode: "report"}
	if err := ValidateStruct(cfg); err != nil {
		t.Fatalf("ValidateStruct returned error: %v", err)
	}
}

func TestValidateStructReportsAllFields(t *testing.T) {
	cfg := probeConfig{Interval: 0, Mode: "bogus"}
	err := ValidateStruct(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("error = %T, want *errors.AppError", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Fatalf("code = %s, want %s", appErr.Code, errors.ErrCodeInvalidInput)
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("details fields = %T, want []FieldError", appErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Fatalf("got %d field errors, want 3: %v", len(fields), fields)
	}
}

func TestValidateStructUsesMapstructureNames(t *testing.T) {
	type cfg struct {
		BaseURL string `mapstructure:"base_url" validate:"required"`
	}
	err := ValidateStruct(cfg{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "base_url") {
		t.Fatalf("error %q should name the field by its mapstructure key", err.Error())
	}
}

func TestValidateStructFallsBackToSnakeCase(t *testing.T) {
	type cfg struct {
		ServiceModelName string `validate:"required"`
	}
	err := ValidateStruct(cfg{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "service_model_name") {
		t.Fatalf("error %q should use snake_case field name", err.Error())
	}
}
