package model

import (
	"database/sql/driver"
	"fmt"
)

// ActiveStatus is the closed domain of the estado column on productos,
// sensores, materiales, usuarios and proveedores.
type ActiveStatus string

const (
	StatusActive   ActiveStatus = "active"
	StatusInactive ActiveStatus = "inactive"
)

func (s ActiveStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s ActiveStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %q", string(s))
	}
	return string(s), nil
}

func (s *ActiveStatus) Scan(src interface{}) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	*s = ActiveStatus(v)
	return nil
}

// TestStatus is the closed domain of pruebas.estado.
type TestStatus string

const (
	TestPending   TestStatus = "pending"
	TestCompleted TestStatus = "completed"
	TestFailed    TestStatus = "failed"
)

func (s TestStatus) Valid() bool {
	switch s {
	case TestPending, TestCompleted, TestFailed:
		return true
	}
	return false
}

func (s TestStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid test status %q", string(s))
	}
	return string(s), nil
}

func (s *TestStatus) Scan(src interface{}) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	*s = TestStatus(v)
	return nil
}

// SaleStatus is the closed domain of ventas.estado.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SalePending   SaleStatus = "pending"
	SaleCancelled SaleStatus = "cancelled"
)

func (s SaleStatus) Valid() bool {
	switch s {
	case SaleCompleted, SalePending, SaleCancelled:
		return true
	}
	return false
}

func (s SaleStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sale status %q", string(s))
	}
	return string(s), nil
}

func (s *SaleStatus) Scan(src interface{}) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	*s = SaleStatus(v)
	return nil
}

func scanString(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into status", src)
	}
}
