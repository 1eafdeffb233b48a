package domain

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testRecord(status Status) Record {
	rec := NewRecord("app-1", testNow.Add(-72*time.Hour))
	rec.Status = status
	return rec
}

func TestTransition_Table(t *testing.T) {
	allStatuses := []Status{
		StatusApplied, StatusUnderReview, StatusOffered,
		StatusOfferAccepted, StatusOfferRejected, StatusHired, StatusRejected,
	}

	legal := map[Status][]Status{
		StatusApplied:       {StatusUnderReview, StatusRejected},
		StatusUnderReview:   {StatusOffered, StatusRejected},
		StatusOffered:       {StatusOfferAccepted, StatusOfferRejected},
		StatusOfferAccepted: {StatusHired},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			wantLegal := false
			for _, l := range legal[from] {
				if l == to {
					wantLegal = true
				}
			}

			rec := testRecord(from)
			next, intents, err := Transition(rec, to, ActorCompany, testNow)

			if wantLegal {
				if err != nil {
					t.Errorf("Transition(%s, %s) unexpected error: %v", from, to, err)
					continue
				}
				if next.Status != to {
					t.Errorf("Transition(%s, %s) status = %s", from, to, next.Status)
				}
				continue
			}

			if !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("Transition(%s, %s) error = %v, want ErrIllegalTransition", from, to, err)
			}
			if next != rec {
				t.Errorf("Transition(%s, %s) mutated record on failure", from, to)
			}
			if intents != nil {
				t.Errorf("Transition(%s, %s) produced intents on failure", from, to)
			}
		}
	}
}

func TestTransition_RejectsNoOp(t *testing.T) {
	for _, s := range []Status{
		StatusApplied, StatusUnderReview, StatusOffered,
		StatusOfferAccepted, StatusOfferRejected, StatusHired, StatusRejected,
	} {
		_, _, err := Transition(testRecord(s), s, ActorCompany, testNow)

		var ite *IllegalTransitionError
		if !errors.As(err, &ite) {
			t.Errorf("no-op transition on %s: error = %v, want IllegalTransitionError", s, err)
			continue
		}
		if ite.From != s || ite.To != s {
			t.Errorf("no-op error = %v, want from/to both %s", ite, s)
		}
	}
}

func TestTransition_TerminalStatesHaveNoExit(t *testing.T) {
	targets := []Status{
		StatusApplied, StatusUnderReview, StatusOffered,
		StatusOfferAccepted, StatusOfferRejected, StatusHired, StatusRejected,
	}

	for _, from := range []Status{StatusOfferRejected, StatusHired, StatusRejected} {
		if !from.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", from)
		}
		for _, to := range targets {
			if _, _, err := Transition(testRecord(from), to, ActorCompany, testNow); !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("Transition(%s, %s) error = %v, want ErrIllegalTransition", from, to, err)
			}
		}
	}
}

func TestTransition_StampsTimestamps(t *testing.T) {
	tests := []struct {
		name  string
		from  Status
		to    Status
		check func(t *testing.T, rec Record)
	}{
		{
			name: "offered sets offer sent",
			from: StatusUnderReview,
			to:   StatusOffered,
			check: func(t *testing.T, rec Record) {
				if !rec.OfferSentAt.Equal(testNow) {
					t.Errorf("OfferSentAt = %v, want %v", rec.OfferSentAt, testNow)
				}
			},
		},
		{
			name: "accepted sets offer responded",
			from: StatusOffered,
			to:   StatusOfferAccepted,
			check: func(t *testing.T, rec Record) {
				if !rec.OfferRespondedAt.Equal(testNow) {
					t.Errorf("OfferRespondedAt = %v, want %v", rec.OfferRespondedAt, testNow)
				}
			},
		},
		{
			name: "declined sets offer responded",
			from: StatusOffered,
			to:   StatusOfferRejected,
			check: func(t *testing.T, rec Record) {
				if !rec.OfferRespondedAt.Equal(testNow) {
					t.Errorf("OfferRespondedAt = %v, want %v", rec.OfferRespondedAt, testNow)
				}
			},
		},
		{
			name: "hired sets hired at",
			from: StatusOfferAccepted,
			to:   StatusHired,
			check: func(t *testing.T, rec Record) {
				if !rec.HiredAt.Equal(testNow) {
					t.Errorf("HiredAt = %v, want %v", rec.HiredAt, testNow)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := Transition(testRecord(tt.from), tt.to, ActorCompany, testNow)
			if err != nil {
				t.Fatalf("Transition error: %v", err)
			}
			tt.check(t, next)
		})
	}
}

func TestTransition_TimestampsAreMonotonic(t *testing.T) {
	rec := NewRecord("app-2", testNow)

	now := testNow
	step := func(to Status) {
		t.Helper()
		now = now.Add(time.Hour)
		next, _, err := Transition(rec, to, ActorCompany, now)
		if err != nil {
			t.Fatalf("Transition to %s: %v", to, err)
		}
		rec = next
	}

	step(StatusUnderReview)
	step(StatusOffered)
	offerSent := rec.OfferSentAt

	step(StatusOfferAccepted)
	responded := rec.OfferRespondedAt

	step(StatusHired)

	if !rec.OfferSentAt.Equal(offerSent) {
		t.Errorf("OfferSentAt changed after later transitions: %v", rec.OfferSentAt)
	}
	if !rec.OfferRespondedAt.Equal(responded) {
		t.Errorf("OfferRespondedAt changed after later transitions: %v", rec.OfferRespondedAt)
	}
	if !rec.AppliedAt.Equal(testNow) {
		t.Errorf("AppliedAt changed: %v", rec.AppliedAt)
	}
}

func TestTransition_Intents(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want []Intent
	}{
		{
			name: "under review notifies company",
			from: StatusApplied,
			to:   StatusUnderReview,
			want: []Intent{
				{Kind: "notify", Audience: AudienceCompany, TemplateID: TemplateUnderReview, ApplicationID: "app-1"},
			},
		},
		{
			name: "offered notifies intern then company",
			from: StatusUnderReview,
			to:   StatusOffered,
			want: []Intent{
				{Kind: "notify", Audience: AudienceIntern, TemplateID: TemplateOfferSent, ApplicationID: "app-1"},
				{Kind: "notify", Audience: AudienceCompany, TemplateID: TemplateOfferSent, ApplicationID: "app-1"},
			},
		},
		{
			name: "accepted notifies company",
			from: StatusOffered,
			to:   StatusOfferAccepted,
			want: []Intent{
				{Kind: "notify", Audience: AudienceCompany, TemplateID: TemplateOfferAccepted, ApplicationID: "app-1"},
			},
		},
		{
			name: "declined notifies company",
			from: StatusOffered,
			to:   StatusOfferRejected,
			want: []Intent{
				{Kind: "notify", Audience: AudienceCompany, TemplateID: TemplateOfferDeclined, ApplicationID: "app-1"},
			},
		},
		{
			name: "hired notifies company",
			from: StatusOfferAccepted,
			to:   StatusHired,
			want: []Intent{
				{Kind: "notify", Audience: AudienceCompany, TemplateID: TemplateHireConfirmed, ApplicationID: "app-1"},
			},
		},
		{
			name: "rejected is silent",
			from: StatusApplied,
			to:   StatusRejected,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, intents, err := Transition(testRecord(tt.from), tt.to, ActorCompany, testNow)
			if err != nil {
				t.Fatalf("Transition error: %v", err)
			}
			if !reflect.DeepEqual(intents, tt.want) {
				t.Errorf("intents = %+v, want %+v", intents, tt.want)
			}
		})
	}
}

func TestTransition_Deterministic(t *testing.T) {
	rec := testRecord(StatusUnderReview)

	first, firstIntents, err1 := Transition(rec, StatusOffered, ActorCompany, testNow)
	second, secondIntents, err2 := Transition(rec, StatusOffered, ActorCompany, testNow)

	if err1 != nil || err2 != nil {
		t.Fatalf("Transition errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("records differ: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(firstIntents, secondIntents) {
		t.Errorf("intents differ: %+v vs %+v", firstIntents, secondIntents)
	}
}

func TestTransition_SkipRejected(t *testing.T) {
	_, _, err := Transition(testRecord(StatusApplied), StatusHired, ActorCompany, testNow)

	var ite *IllegalTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("error = %v, want IllegalTransitionError", err)
	}
	if ite.From != StatusApplied || ite.To != StatusHired {
		t.Errorf("error names %s -> %s, want Applied -> Hired", ite.From, ite.To)
	}
}
