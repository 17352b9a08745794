// Package entid wires entropy-backed RFC 9562 identifier generation into a
// single service: a configured entropy source (local CSPRNG, HTTP beacon
// fan-out, or websocket stream), a structured logger, and the v5/v7
// generators from pkg/uuid.
//
// Initialization is explicit; there is no auto-started global state:
//
//	cfg := entid.Default()
//	entid.FromEnv(&cfg)
//	svc, err := entid.New(cfg)
//	if err != nil {
//	    // entropy source could not be initialized
//	}
//	defer svc.Close()
//
//	u, err := svc.V7(ctx)
//	s := svc.Render(u, uuid.FormatURN)
package entid
