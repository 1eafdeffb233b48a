package appflow_test

import (
	"context"
	"fmt"
	"os"

	"github.com/Internmain07/I-INTERN-sub000/pkg/appflow"
)

// ExampleNew demonstrates how to embed the lifecycle engine in your
// application.
func ExampleNew() {
	dir, err := os.MkdirTemp("", "appflow-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := appflow.DefaultConfig()
	cfg.StoreKind = appflow.StoreFile
	cfg.DataDir = dir

	engine, err := appflow.New(cfg)
	if err != nil {
		fmt.Printf("failed to create engine: %v\n", err)
		return
	}
	defer engine.Close()

	ctx := context.Background()

	rec, err := engine.Create(ctx)
	if err != nil {
		fmt.Printf("failed to create application: %v\n", err)
		return
	}

	rec, err = engine.Transition(ctx, rec.ID, appflow.StatusUnderReview, appflow.ActorCompany)
	if err != nil {
		fmt.Printf("transition failed: %v\n", err)
		return
	}

	fmt.Printf("status: %s\n", rec.Status)
	fmt.Printf("contact details visible: %v\n", rec.ContactDetailsVisible())

	// Output:
	// status: Under Review
	// contact details visible: false
}

// ExampleEngine_Transition_illegal shows how illegal transitions are
// reported.
func ExampleEngine_Transition_illegal() {
	dir, err := os.MkdirTemp("", "appflow-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := appflow.DefaultConfig()
	cfg.StoreKind = appflow.StoreFile
	cfg.DataDir = dir

	engine, err := appflow.New(cfg)
	if err != nil {
		fmt.Printf("failed to create engine: %v\n", err)
		return
	}
	defer engine.Close()

	ctx := context.Background()
	rec, err := engine.Create(ctx)
	if err != nil {
		fmt.Printf("failed to create application: %v\n", err)
		return
	}

	// Applied cannot jump straight to Hired.
	if _, err := engine.Transition(ctx, rec.ID, appflow.StatusHired, appflow.ActorCompany); err != nil {
		fmt.Println(err)
	}

	// Output:
	// appflow: illegal transition from Applied to Hired
}
