package server

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/auth"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/backend"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/songs"
	"github.com/deokapil/mayhem-admin/internal/common/apperrors"
)

func (s *AdminServer) getRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, auth.LandingPath, http.StatusSeeOther)
}

func (s *AdminServer) getLogin(w http.ResponseWriter, r *http.Request) {
	render(r.Context(), w, http.StatusOK, "login.html", loginView{
		Redirect: r.URL.Query().Get(auth.RedirectParam),
	})
}

func (s *AdminServer) postLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		render(ctx, w, http.StatusBadRequest, "login.html", loginView{
			Error: "unable to read the sign-in form",
		})
		return
	}

	creds := auth.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	rsp, err := auth.Login(ctx, s.client, creds)
	if err != nil {
		log.Ctx(ctx).Info().Err(err).Str("email", creds.Email).Msg("login failed")
		v := loginView{
			Email:    creds.Email,
			Redirect: r.PostFormValue(auth.RedirectParam),
			Error:    loginFailureMessage(err),
		}
		render(ctx, w, loginFailureStatus(err), "login.html", v)
		return
	}

	s.Store.Set(w, rsp.Token)
	log.Ctx(ctx).Info().Str("admin", rsp.Admin.Email).Msg("login succeeded")
	http.Redirect(w, r, auth.ResumePath(r), http.StatusSeeOther)
}

// Login failures surface at the form level. The message depends on the
// failure class, never on raw transport detail.
func loginFailureMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "a valid email address and a password are required"
	case errors.Is(err, backend.ErrUnauthorized):
		return "invalid email or password"
	case errors.Is(err, backend.ErrTransport):
		return "unable to reach the server, please try again"
	default:
		return "sign in failed, please try again"
	}
}

func loginFailureStatus(err error) int {
	var aerr apperrors.Error
	if errors.As(err, &aerr) {
		return aerr.StatusCode()
	}
	return http.StatusInternalServerError
}

func (s *AdminServer) postLogout(w http.ResponseWriter, r *http.Request) {
	s.Store.Clear(w)
	log.Ctx(r.Context()).Info().Msg("logout")
	http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
}

func (s *AdminServer) getSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := songs.ParseQuery(r.URL.Query())

	res, err := s.Songs.List(ctx, q)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			// The credential is no longer accepted. Drop the session and send
			// the client back through login, resuming here afterwards.
			s.Store.Clear(w)
			original := r.URL.Path
			if r.URL.RawQuery != "" {
				original += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, auth.LoginRedirectURL(original), http.StatusSeeOther)
			return
		case errors.Is(err, songs.ErrSuperseded):
			// A newer navigation won the race; show its state instead.
			if cur := s.Songs.Current(); cur != nil {
				res = cur
				break
			}
			render(ctx, w, http.StatusOK, "songs.html", songsView{Query: q.Normalize()})
			return
		default:
			log.Ctx(ctx).Error().Err(err).Msg("unable to load song listing")
			render(ctx, w, http.StatusBadGateway, "songs.html", songsView{
				Query: q.Normalize(),
				Error: "unable to load songs, please try again",
			})
			return
		}
	}

	render(ctx, w, http.StatusOK, "songs.html", songsView{
		Query:      res.Query,
		Songs:      res.Page.Items,
		Pagination: res.Pagination,
	})
}
