package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:     http.StatusNotFound,
		KindValidation:   http.StatusBadRequest,
		KindBadRequest:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNoMatch:      http.StatusUnprocessableEntity,
		KindRateLimited:  http.StatusTooManyRequests,
		KindInternal:     http.StatusInternalServerError,
		KindUnknown:      http.StatusBadRequest,
	}
	for kind, want := range cases {
		if got := New(kind, "x").HTTPStatus(); got != want {
			t.Fatalf("kind %d: expected %d, got %d", kind, want, got)
		}
	}
}

func TestGetKindFollowsChain(t *testing.T) {
	base := errors.New("boom")
	err := fmt.Errorf("outer: %w", Wrap(KindNoMatch, "no match", base).WithOp("phone.Parse"))

	if got := GetKind(err); got != KindNoMatch {
		t.Fatalf("expected KindNoMatch, got %d", got)
	}
	if !errors.Is(err, base) {
		t.Fatal("expected underlying error to be reachable")
	}
	if GetKind(base) != KindUnknown {
		t.Fatal("expected plain errors to be unknown")
	}
}

func TestErrorMessage(t *testing.T) {
	err := Validation("bad input").WithOp("phone.Format")
	if err.Error() != "phone.Format: bad input" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if New(KindNotFound, "gone").Error() != "gone" {
		t.Fatal("expected message without op")
	}
}
