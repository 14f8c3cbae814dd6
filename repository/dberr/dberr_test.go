package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/toko-api/repository/dberr"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantRaw bool
	}{
		{name: "nil", err: nil},
		{name: "duplicate", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ani@x.com' for key 'pembelis_email_unique'"}, wantIs: dberr.ErrDuplicate},
		{name: "wrapped duplicate", err: fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), wantIs: dberr.ErrDuplicate},
		{name: "foreign key", err: &mysql.MySQLError{Number: 1452}, wantIs: dberr.ErrForeignKey},
		{name: "other mysql error", err: &mysql.MySQLError{Number: 1205}, wantRaw: true},
		{name: "non mysql error", err: other, wantRaw: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dberr.Translate(tt.err)
			switch {
			case tt.err == nil:
				if got != nil {
					t.Fatalf("Translate(nil) = %v, want nil", got)
				}
			case tt.wantRaw:
				if got != tt.err {
					t.Fatalf("Translate() = %v, want original error", got)
				}
			default:
				if !errors.Is(got, tt.wantIs) {
					t.Fatalf("Translate() = %v, want errors.Is %v", got, tt.wantIs)
				}
			}
		})
	}
}
