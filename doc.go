// Package bc evaluates arbitrary-precision arithmetic with the bc calculator.
//
// Each call spawns a fresh bc process with the standard math library loaded
// (-l) and the banner suppressed (-q), writes the statement to its stdin,
// captures stdout and stderr in full, and returns the result as one clean
// string: the trailing newline is removed and numbers that bc wrapped across
// several lines are joined back together.
//
// # Basic Usage
//
//	ctx := context.Background()
//	result, err := bc.Eval(ctx, "2.5 + 6")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result) // 8.5
//
// # Explicit Paths
//
// BC and BCTimeout take the executables explicitly:
//
//	result, err := bc.BC(ctx, "/usr/bin/bc", "2^100")
//
//	// Run bc under coreutils timeout, killed after 20 seconds.
//	result, err := bc.BCTimeout(ctx, "timeout", 20, "bc", "99^99")
//
// # Timeouts
//
// EvalTimeout bounds a call with the external timeout supervisor, defaulting
// to 15 seconds:
//
//	result, err := bc.EvalTimeout(ctx, "99^99")
//	result, err := bc.EvalTimeout(ctx, "99^99", bc.WithTimeout(20*time.Second))
//
// Eval with WithTimeout enforces the deadline natively, without a second
// process:
//
//	result, err := bc.Eval(ctx, "99999^99999", bc.WithTimeout(time.Second))
//
// # Batches
//
// EvalAll evaluates independent statements concurrently:
//
//	results, err := bc.EvalAll(ctx, []string{"1+1", "2^64", "s(1)"},
//	    bc.WithConcurrency(8),
//	)
//
// # Error Handling
//
// Every failure is a typed error:
//
//	result, err := bc.Eval(ctx, statement)
//	if err != nil {
//	    if errors.Is(err, bc.ErrNoResult) {
//	        // statement printed nothing, e.g. "x = 5"
//	    }
//	    if errors.Is(err, bc.ErrTimeout) {
//	        // deadline exceeded
//	    }
//	    if toolErr, ok := errors.AsType[*bc.ToolError](err); ok {
//	        log.Printf("bc rejected %q: %s", statement, toolErr.Message)
//	    }
//	    if spawnErr, ok := errors.AsType[*bc.SpawnError](err); ok {
//	        log.Fatalf("cannot run bc: %v", spawnErr)
//	    }
//	}
//
// # Logging
//
// The package is silent by default. Use WithLogger for operation tracking:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	result, err := bc.Eval(ctx, "1+1", bc.WithLogger(logger))
package bc
