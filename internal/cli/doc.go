// Package cli provides executable discovery and argument construction for the
// bc calculator and its timeout supervisor.
//
// # Discovery
//
// The Discoverer interface locates an executable:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    Path:   "",           // Optional explicit path
//	    Name:   cli.BCName,
//	    Logger: slog.Default(),
//	})
//	bcPath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.Path (if provided)
//  2. System PATH, for the name and each of its aliases
//  3. Common installation directories (/usr/local/bin, /usr/bin, /opt/homebrew/bin)
//
// # Command Building
//
//	args := cli.BuildArgs()                          // -l -q
//	args := cli.BuildSupervisedArgs(bcPath, 15*time.Second) // 15s <bc> -l -q
package cli
