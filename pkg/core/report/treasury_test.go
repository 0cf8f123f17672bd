package report

import (
	"testing"

	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

const (
	authorizedElem = "jpcrp-sbr_cor:TotalAmountOfAcquisitionAuthorizedByBoardOfDirectorsMeeting"
	acquiredElem   = "jpcrp-sbr_cor:TotalAmountOfSharesAcquiredByResolutionOfBoardOfDirectorsMeeting"
	resolutionElem = "jpcrp-sbr_cor:DateOfResolutionOfBoardOfDirectorsMeeting"
)

func TestProcessTreasuryBoardMeetingOrder(t *testing.T) {
	// Resolutions declared A, C, B must come back A, C, B.
	fs := factSet("220",
		dei("jpdei_cor:FilerNameInJapaneseDEI", "テスト株式会社"),
		xbrl.Fact{ElementID: authorizedElem, ContextID: "BoardMeetingA", Value: "1,000,000"},
		xbrl.Fact{ElementID: resolutionElem, ContextID: "BoardMeetingA", Value: "2025-04-10"},
		xbrl.Fact{ElementID: authorizedElem, ContextID: "BoardMeetingC", Value: "3,000,000"},
		xbrl.Fact{ElementID: acquiredElem, ContextID: "BoardMeetingA", Value: "900,000"},
		xbrl.Fact{ElementID: authorizedElem, ContextID: "BoardMeetingB", Value: "2,000,000"},
	)
	r, err := Dispatch(fs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	ts := r.(*TreasuryStockReport)
	if len(ts.BoardMeetings) != 3 {
		t.Fatalf("got %d board meetings, want 3", len(ts.BoardMeetings))
	}
	wantOrder := []string{"BoardMeetingA", "BoardMeetingC", "BoardMeetingB"}
	for i, ctx := range wantOrder {
		if ts.BoardMeetings[i].ContextID != ctx {
			t.Errorf("entry %d = %s, want %s", i, ts.BoardMeetings[i].ContextID, ctx)
		}
	}
	a := ts.BoardMeetings[0]
	if a.AuthorizedAmount == nil || *a.AuthorizedAmount != 1_000_000 {
		t.Errorf("entry A authorized = %v", a.AuthorizedAmount)
	}
	if a.AcquiredAmount == nil || *a.AcquiredAmount != 900_000 {
		t.Errorf("entry A acquired = %v", a.AcquiredAmount)
	}
	if a.ResolutionDate == nil {
		t.Error("entry A resolution date missing")
	}
	if ts.BoardMeetings[2].AcquiredAmount != nil {
		t.Error("entry B has no acquired amount, want nil")
	}
	if !ts.HasBoardAuthorization {
		t.Error("non-zero authorization should set HasBoardAuthorization")
	}
}

func TestProcessTreasuryNoAuthorization(t *testing.T) {
	fs := factSet("220",
		dei("jpdei_cor:FilerNameInJapaneseDEI", "テスト株式会社"),
		xbrl.Fact{ElementID: authorizedElem, ContextID: "BoardMeetingA", Value: "0"},
	)
	r, _ := Dispatch(fs)
	ts := r.(*TreasuryStockReport)
	if ts.HasBoardAuthorization {
		t.Error("zero authorization amounts should not set HasBoardAuthorization")
	}
}

func TestProcessTreasuryAmendmentAndTextBlocks(t *testing.T) {
	fs := factSet("230",
		dei("jpdei_cor:FilerNameInJapaneseDEI", "テスト株式会社"),
		dei("jpdei_cor:AmendmentFlagDEI", "true"),
		xbrl.Fact{ElementID: "jpcrp-sbr_cor:DisposalsOfTreasurySharesTextBlock", ContextID: "FilingDateInstant", Value: "処分の状況"},
		xbrl.Fact{ElementID: "jpcrp-sbr_cor:HoldingOfTreasurySharesTextBlock", ContextID: "FilingDateInstant", Value: "保有の状況"},
	)
	r, _ := Dispatch(fs)
	ts := r.(*TreasuryStockReport)
	if !ts.IsAmendment {
		t.Error("doc 230 with amendment flag should mark IsAmendment")
	}
	if ts.DisposalHoldingText == nil || *ts.DisposalHoldingText != "処分の状況\n保有の状況" {
		t.Errorf("disposal/holding text = %v", ts.DisposalHoldingText)
	}
	if ts.DocumentTitle == nil || *ts.DocumentTitle != "自己株券買付状況報告書" {
		t.Errorf("default document title missing, got %v", ts.DocumentTitle)
	}
	if ts.HasBoardAuthorization {
		t.Error("no board meetings at all should not set HasBoardAuthorization")
	}
}
