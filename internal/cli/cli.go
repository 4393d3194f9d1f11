// Package cli implements the exhibit-search command line tool: keyword
// search and vocabulary listing against the catalog store.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/exhibit-backend/internal/service/search"
)

type searchService interface {
	Search(ctx context.Context, input search.SearchInput) (*search.SearchResult, error)
}

type keywordLister interface {
	ListKeywords(ctx context.Context) ([]string, error)
}

type tokenIssuer interface {
	Issue(username string, ttl time.Duration) (string, error)
}

// Backend is what the commands run against.
type Backend struct {
	Search   searchService
	Keywords keywordLister
	// Tokens is nil when token signing is not configured.
	Tokens tokenIssuer
}

// Opener connects a Backend. The returned func releases it.
type Opener func(ctx context.Context) (*Backend, func(), error)

// NewRootCmd builds the command tree. version is printed by the version
// subcommand.
func NewRootCmd(open Opener, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "exhibit-search",
		Short:         "Search the exhibit photo catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSearchCmd(open),
		newKeywordsCmd(open),
		newTokenCmd(open),
		newVersionCmd(version),
	)
	return root
}

func newSearchCmd(open Opener) *cobra.Command {
	var (
		user    string
		mode    string
		asJSON  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "search [keyword...]",
		Short: "Find items tagged with up to three keywords",
		Example: `  exhibit-search search --user alice --mode all dog park
  exhibit-search search "golden gate"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			backend, release, err := open(ctx)
			if err != nil {
				return err
			}
			defer release()

			result, err := backend.Search.Search(ctx, search.SearchInput{
				Keywords: args,
				Mode:     mode,
				Identity: user,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeResultJSON(cmd.OutOrStdout(), result)
			}
			return writeResultTable(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "search as this username (default anonymous)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "any", "restriction mode: any or all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")
	return cmd
}

func newKeywordsCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the keyword vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, release, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			keywords, err := backend.Keywords.ListKeywords(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, kw := range keywords {
				if _, err := fmt.Fprintln(out, kw); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTokenCmd(open Opener) *cobra.Command {
	var (
		user string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, release, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			if backend.Tokens == nil {
				return errors.New("token signing is disabled: set auth.jwt_secret")
			}
			token, err := backend.Tokens.Issue(user, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "username the token is issued for")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

type resultItemJSON struct {
	Library    int64     `json:"library"`
	ID         int64     `json:"id"`
	Roll       string    `json:"roll"`
	Caption    string    `json:"caption"`
	MediaType  string    `json:"media_type"`
	CapturedAt time.Time `json:"captured_at"`
	MatchedVia []string  `json:"matched_via"`
}

type resultJSON struct {
	Keywords    []string         `json:"keywords"`
	Restriction string           `json:"restriction"`
	Count       int              `json:"count"`
	Items       []resultItemJSON `json:"items"`
}

func writeResultJSON(w io.Writer, result *search.SearchResult) error {
	out := resultJSON{
		Keywords:    result.Keywords,
		Restriction: result.Mode.String(),
		Count:       len(result.Matches),
		Items:       make([]resultItemJSON, len(result.Matches)),
	}
	for i, m := range result.Matches {
		out.Items[i] = resultItemJSON{
			Library:    int64(m.Item.LibraryID),
			ID:         int64(m.Item.ID),
			Roll:       m.Item.RollName,
			Caption:    m.Item.Caption,
			MediaType:  m.Item.MediaKind.String(),
			CapturedAt: m.Item.CapturedAt,
			MatchedVia: m.Keywords,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeResultTable prints the "(Any) dog, park: N items found" header and
// one row per match.
func writeResultTable(w io.Writer, result *search.SearchResult) error {
	header := fmt.Sprintf("(%s) %s: %d items found",
		modeLabel(result.Mode.String()), strings.Join(result.Keywords, ", "), len(result.Matches))
	if len(result.Keywords) == 0 {
		header = fmt.Sprintf("all items: %d found", len(result.Matches))
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if len(result.Matches) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tROLL\tDATE\tMATCHED\tCAPTION")
	for _, m := range result.Matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.Item.Key(),
			m.Item.RollName,
			m.Item.CapturedAt.Format(time.DateOnly),
			strings.Join(m.Keywords, ","),
			m.Item.Caption,
		)
	}
	return tw.Flush()
}

func modeLabel(mode string) string {
	if mode == "" {
		return ""
	}
	return mode[:1] + strings.ToLower(mode[1:])
}
