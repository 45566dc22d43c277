// Package taglog is a tag-gated logging facade: callers emit messages
// annotated with zero or more string tags, and only messages carrying at
// least one currently active tag (or no tags at all) are emitted. The
// reserved [Force] tag is always active and can never be deactivated, so
// messages tagged with it are never suppressed.
//
// Every emitted line is mirrored into an in-memory [History] transcript and
// broadcast to [Hub] listeners, letting other subsystems observe logging
// traffic. The error path ([Logger.Error]) skips the tag gate entirely and
// always writes the sink's error channel.
//
// Typical usage creates a [Logger], applies settings, and logs under tags:
//
//	tl := taglog.New()
//	tl.Apply(taglog.Settings{
//	    Console:     true,
//	    History:     true,
//	    TagHeader:   true,
//	    DefaultTags: []string{"NET"},
//	})
//
//	tl.Log("connected", "NET")   // emitted: "[NET] connected"
//	tl.Log("cache miss", "DB")   // suppressed, DB is not active
//	tl.Error("handshake failed") // never suppressed
//
// Settings can come from a [Provider] instead: [EnvProvider] reads TAGLOG_*
// environment variables, [FileProvider] reads a YAML file described by
// [SettingsSchema], and [Config] wires the same values to CLI flags via
// [github.com/spf13/pflag] with shell completions via
// [github.com/spf13/cobra]. [Logger.Init] applies a provider's snapshot
// once and is a no-op when the registry is already populated, which guards
// hot-reload environments that re-run startup hooks.
//
// A [Publisher] streams every emitted line to channel subscribers, which is
// useful for tailing a logger inside a Bubble Tea TUI:
//
//	pub := taglog.NewPublisher()
//	tl := taglog.New(taglog.WithPublisher(pub))
//
//	sub := pub.Subscribe()
//	go func() {
//	    for line := range sub.C() {
//	        // Deliver line to the TUI.
//	    }
//	}()
//
// [NewSlogHandler] bridges [log/slog] through the facade, so structured
// logging call sites gate on tags too.
//
// Building with the taglog_off tag compiles the development entry points
// ([Logger.Log], [Logger.LogValue], [Logger.Fast], [Logger.Show], tag
// activation) into no-ops with zero runtime cost; [Logger.Error] and the
// query surface remain live.
package taglog
