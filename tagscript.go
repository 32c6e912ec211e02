// Package tagscript expands user-authored tags: short templates whose
// {name} and {name:params} markers are replaced by the output of named
// handlers.
//
//	engine := tagscript.MustNew(tagscript.WithDefaultLibraries())
//	defer engine.Close()
//
//	out := engine.Parse("{upper:hello}, {choose:world|friend}!")
//	// out: "HELLO, world!" or "HELLO, friend!"
//
// # Evaluation
//
// The engine repeatedly rewrites the innermost marker: the first '}' in the
// text and the nearest '{' before it. A marker inside another marker's
// parameters is therefore expanded before the outer handler runs:
//
//	{upper:{get:name}}   // get runs first, upper sees its result
//
// Text a handler returns is never scanned again, so a handler cannot inject
// new markers. Unknown names are left in the output as written. Expansion
// stops at a fixed point, after the configured number of iterations, or when
// the working text outgrows the intermediate length limit. The final output
// is cut to the output limit without any marker.
//
// # Escapes
//
// \{, \} and \| are never treated as structure. They are kept in the output
// in their backslash form, which chat clients render as the bare character.
//
// # Handlers
//
// A Handler has a parameterless form and a parameterized form:
//
//	greet := tagscript.NewHandler("greet",
//	    func(env *tagscript.Environment) (string, error) { return "hi", nil },
//	    func(env *tagscript.Environment, params string) (string, error) { return "hi " + params, nil },
//	)
//
// Returning an error aborts the whole parse; the error message becomes the
// output. Use Fail to choose that message exactly.
//
// # Environments
//
// Handlers share state through an Environment. Parse uses the engine's own
// environment under a lock, ParseWith uses one the caller owns, and
// ParseAsync runs against a copy taken at submission:
//
//	engine.Put("user", "alice")
//	engine.ParseAsync("{get:user}", func(r *tagscript.ParseResult) {
//	    fmt.Println(r.Output, r.Environment.Len())
//	})
//
// # Configuration
//
// Limits, bundled libraries and constant tags can be loaded from YAML:
//
//	cfg, _ := tagscript.LoadConfig("tags.yaml")
//	engine, _ := tagscript.New(tagscript.WithConfig(cfg), tagscript.WithLogger(logger))
package tagscript
