package client

import "testing"

func TestValidateName(t *testing.T) {
	if err := ValidateName("Alice Doe"); err != nil {
		t.Errorf("expected valid name, got: %v", err)
	}
	if err := ValidateName("A"); err == nil {
		t.Error("expected single character to be rejected")
	}
	if err := ValidateName(""); err == nil {
		t.Error("expected empty name to be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"alice@example.com", "alice+tag@mail.example.co.uk"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("expected %q to be valid, got: %v", email, err)
		}
	}

	invalid := []string{"", "alice", "alice@", "alice@example", "alice@example.c"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	valid := []string{"Passw0rd@", "Secret9$x", "Aa1@aaaa"}
	for _, pw := range valid {
		if err := ValidatePassword(pw); err != nil {
			t.Errorf("expected %q to be valid, got: %v", pw, err)
		}
	}

	invalid := []string{
		"short1@",    // too short
		"passw0rd@",  // no uppercase
		"Password@",  // no digit
		"Passw0rdd",  // no special
		"Passw0rd#",  // unsupported special
		"Passw 0rd@", // space
	}
	for _, pw := range invalid {
		if err := ValidatePassword(pw); err == nil {
			t.Errorf("expected %q to be rejected", pw)
		}
	}
}

func TestValidatePosition(t *testing.T) {
	if err := ValidatePosition("Engineer"); err != nil {
		t.Errorf("expected valid position, got: %v", err)
	}
	if err := ValidatePosition("X"); err == nil {
		t.Error("expected single character to be rejected")
	}
}

func TestValidateSalary(t *testing.T) {
	if err := ValidateSalary(50000); err != nil {
		t.Errorf("expected valid salary, got: %v", err)
	}
	if err := ValidateSalary(0); err == nil {
		t.Error("expected zero salary to be rejected")
	}
	if err := ValidateSalary(-1); err == nil {
		t.Error("expected negative salary to be rejected")
	}
}
