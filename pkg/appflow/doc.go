// Package appflow is the embeddable internship application lifecycle
// engine.
//
// It wraps the pure state machine (transition table, contact-visibility
// policy, notification intents) together with a pluggable record store and
// notifier. Use [New] to create an [Engine], then call [Engine.Transition]
// to apply status changes:
//
//	cfg := appflow.DefaultConfig()
//	cfg.StoreKind = appflow.StoreFile
//	cfg.DataDir = "/var/lib/appflow"
//
//	engine, err := appflow.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	rec, err := engine.Transition(ctx, id, appflow.StatusUnderReview, appflow.ActorCompany)
//
// The record is persisted before any notification goes out; if persistence
// fails nothing is dispatched. Concurrent transitions on one record resolve
// to a single winner, the loser receiving an IllegalTransitionError naming
// the committed status.
package appflow
