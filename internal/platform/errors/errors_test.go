package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeAdvancementSlotTaken, "slot 1 occupied")
	target := New(CodeAdvancementSlotTaken, "different message")

	if !stderrors.Is(err, target) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeNotFound, "record not found")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("unique constraint failed")
	err := Wrap(CodeAdvancementSlotTaken, "advancement slot already taken", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "advancement slot already taken" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeAdvancementTraitCount, codes.InvalidArgument},
		{CodeAdvancementMaxSelections, codes.FailedPrecondition},
		{CodeAdvancementSlotTaken, codes.Aborted},
		{CodeLevelUpConflict, codes.Aborted},
		{CodeCharacterGone, codes.NotFound},
		{CodeAdvancementUnknownType, codes.Internal},
		{CodeAdvancementMalformedPayload, codes.Internal},
		{CodeUnknown, codes.Internal},
	}
	for _, tc := range tests {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("code %s: expected %v, got %v", tc.code, tc.want, got)
		}
	}
}

func TestToGRPCStatus(t *testing.T) {
	err := WithMetadata(CodeAdvancementLevelBelowTier, "level below tier", map[string]string{"tier": "3"})
	stErr := err.ToGRPCStatus("en-US", "Character level insufficient for tier 3.")

	st, ok := status.FromError(stErr)
	if !ok {
		t.Fatal("expected grpc status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}
	if st.Message() != "level below tier" {
		t.Fatalf("unexpected status message %q", st.Message())
	}
	if len(st.Details()) != 2 {
		t.Fatalf("expected 2 details, got %d", len(st.Details()))
	}
}
