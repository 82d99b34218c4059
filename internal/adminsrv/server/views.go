package server

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/auth"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/songs"
	"github.com/deokapil/mayhem-admin/internal/common/httpx"
	"github.com/deokapil/mayhem-admin/pkg/api"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// loginView is the data for the login page.
type loginView struct {
	Email    string // preserved form input on a failed attempt
	Redirect string // post-login destination carried through the form
	Error    string // form-level failure message
}

// songsView is the data for the song management page. Navigation links are
// derived from the query so every filter, sort, and page change round-trips
// through the URL.
type songsView struct {
	Query      songs.Query
	Songs      []api.Song
	Pagination songs.Pagination
	Error      string
}

// SortLink returns the listing URL that sorts by the given column, toggling
// the direction when the column is already the sort key.
func (v songsView) SortLink(column string) string {
	return auth.LandingPath + "?" + v.Query.ToggleSort(column).QueryString()
}

// SortIndicator marks the active sort column with its direction.
func (v songsView) SortIndicator(column string) string {
	if v.Query.Sort != column {
		return ""
	}
	if v.Query.Direction == songs.DirectionDesc {
		return " ▼"
	}
	return " ▲"
}

// PageLink returns the listing URL for the given page with all other state
// preserved.
func (v songsView) PageLink(page int) string {
	return auth.LandingPath + "?" + v.Query.WithPage(page).QueryString()
}

// ActiveValue renders the tri-state active filter for the form select.
func (v songsView) ActiveValue() string {
	if v.Query.Active == nil {
		return ""
	}
	if *v.Query.Active {
		return "true"
	}
	return "false"
}

func render(ctx context.Context, w http.ResponseWriter, statusCode int, name string, data any) {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("template", name).Msg("unable to render template")
		httpx.ErrApplicationError().Send(w)
		return
	}
	httpx.SendHTMLRsp(ctx, w, statusCode, buf.Bytes())
}
