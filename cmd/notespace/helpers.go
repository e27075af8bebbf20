// Shared helpers for notespace CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/plainfield/notespace/internal/sqlite"
	"github.com/plainfield/notespace/pkg/rawvalue"
	"github.com/plainfield/notespace/pkg/types"
)

// newLogger builds the CLI logger. Debug output goes to stderr so it never
// mixes with command output.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend(newLogger())
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// getSpace fetches a space by slug through an attached backend.
func getSpace(backend *sqlite.Backend, slug string) (*types.Space, error) {
	spaces, err := backend.Spaces()
	if err != nil {
		return nil, err
	}
	return spaces.Get(slug)
}

// mutationContext captures the values sentinels resolve to for this
// invocation. With --as, the acting user is looked up by username.
func mutationContext(backend *sqlite.Backend, asUser string) (rawvalue.Context, error) {
	rctx := rawvalue.Context{Now: time.Now().UTC()}
	if asUser == "" {
		return rctx, nil
	}
	users, err := backend.Users()
	if err != nil {
		return rctx, err
	}
	user, err := users.GetByUsername(asUser)
	if err != nil {
		return rctx, fmt.Errorf("resolve user %q: %w", asUser, err)
	}
	rctx.UserID = user.UserID
	return rctx, nil
}

// parseFieldArgs converts repeated --field id=value flags into a raw payload.
func parseFieldArgs(pairs []string) (map[string]string, error) {
	raw := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		id, value, found := strings.Cut(pair, "=")
		if !found || id == "" {
			return nil, fmt.Errorf("malformed field %q, want id=value: %w", pair, types.ErrInvalidData)
		}
		raw[id] = value
	}
	return raw, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printNote writes the default structured view of a note: one row per schema
// field, in schema order, followed by any stored fields the schema no longer
// names.
func printNote(space *types.Space, note *types.Note) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Note:\t%s/%d\n", space.Slug, note.Number)
	fmt.Fprintf(w, "Created:\t%s\n", note.CreatedAt.Format("2006-01-02 15:04 MST"))
	if note.EditedAt != nil {
		fmt.Fprintf(w, "Edited:\t%s\n", note.EditedAt.Format("2006-01-02 15:04 MST"))
	}
	if note.Author != "" {
		fmt.Fprintf(w, "Author:\t%s\n", note.Author)
	}

	seen := make(map[string]bool, len(space.Fields))
	for _, f := range space.Fields {
		seen[f.ID] = true
		fmt.Fprintf(w, "%s:\t%s\n", f.ID, rawvalue.Display(f.Type, note.Fields[f.ID]))
	}
	for id, v := range note.Fields {
		if !seen[id] {
			fmt.Fprintf(w, "%s:\t%v\n", id, v)
		}
	}
	w.Flush()
}

// printNoteList writes the default tabular view of notes using the space's
// list fields, falling back to every schema field.
func printNoteList(space *types.Space, notes []*types.Note) {
	listFields := space.ListFields
	if len(listFields) == 0 {
		for _, f := range space.Fields {
			listFields = append(listFields, f.ID)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "#\t%s\n", strings.Join(listFields, "\t"))
	for _, note := range notes {
		row := make([]string, 0, len(listFields)+1)
		row = append(row, fmt.Sprintf("%d", note.Number))
		for _, id := range listFields {
			fieldType := types.FieldString
			if f, ok := space.Field(id); ok {
				fieldType = f.Type
			}
			row = append(row, rawvalue.Display(fieldType, note.Fields[id]))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// userValues converts the pointer slice storage returns into the value slice
// template contexts take.
func userValues(users []*types.User) []types.User {
	out := make([]types.User, 0, len(users))
	for _, u := range users {
		out = append(out, *u)
	}
	return out
}
