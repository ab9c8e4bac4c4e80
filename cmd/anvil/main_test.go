package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/anvil/internal/adapters/telemetry"
	"go.trai.ch/anvil/internal/app"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/anvil/internal/engine/planner"
	"go.trai.ch/anvil/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 1. Setup Mocks
	mockLoader := mocks.NewMockRequestLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	// 2. Create Real App with Mocks
	application := app.New(
		mockLoader,
		planner.New(registry.NewDefault()),
		mockLogger,
		telemetry.NewNoopTracer(),
		nil,
	)

	// 3. Define Provider
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	// 4. Capture Stderr
	stderr := new(bytes.Buffer)

	// 5. Run with "version" command
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockRequestLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	// Stub Logger Error
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	// Mock Load failing to simulate execution failure
	mockLoader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, errors.New("load failed"))

	application := app.New(
		mockLoader,
		planner.New(registry.NewDefault()),
		mockLogger,
		telemetry.NewNoopTracer(),
		nil,
	).WithStdout(io.Discard)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
