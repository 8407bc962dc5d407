package dashboard

import (
	"embed"
	"errors"
	"fmt"
	"houseprice/internal/apiclient"
	"houseprice/internal/core"
	"houseprice/internal/http/handler/middleware"
	"houseprice/internal/predict"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	Index        = "GET /{$}"
	Login        = "POST /login"
	Register     = "POST /register"
	Logout       = "POST /logout"
	Me           = "GET /me"
	Predict      = "POST /predict"
	DeleteRecord = "POST /records/{id}/delete"
)

const (
	tokenCookie = "hp_token"
	userCookie  = "hp_user"
)

//go:embed templates/index.html
var templates embed.FS

var propertyTypes = []string{"House", "Apartment", "Unit", "Townhouse"}

type flash struct {
	Kind string
	Text string
}

type predictForm struct {
	Suburb        string
	PropertyType  string
	Bedrooms      string
	Bathrooms     string
	Parking       string
	LandSize      string
	BuildingSize  string
	Postcode      string
	SchoolsNearby string
}

func defaultForm() predictForm {
	return predictForm{
		Suburb:        "Box Hill",
		PropertyType:  "House",
		Bedrooms:      "3",
		Bathrooms:     "2",
		Parking:       "1",
		LandSize:      "450",
		BuildingSize:  "120",
		Postcode:      "3128",
		SchoolsNearby: "0",
	}
}

type page struct {
	LoggedIn      bool
	Username      string
	Flash         *flash
	Profile       *core.UserProfile
	Prediction    *core.PredictionRecord
	Records       []core.PredictionRecord
	Form          predictForm
	PropertyTypes []string
}

type session struct {
	token    string
	username string
}

// Dashboard is the browser front end. It keeps the API token in a cookie and
// shows every API failure inline on the page.
type Dashboard struct {
	logs         *zap.SugaredLogger
	api          APIClient
	tmpl         *template.Template
	secureCookie bool
}

func New(logger *zap.SugaredLogger, api APIClient, secureCookie bool) (*Dashboard, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"price": formatPrice,
	}).ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}

	return &Dashboard{
		logs:         logger,
		api:          api,
		tmpl:         tmpl,
		secureCookie: secureCookie,
	}, nil
}

func (d *Dashboard) Routes(mux *http.ServeMux) {
	mux.HandleFunc(Index, d.HandleIndex)
	mux.HandleFunc(Login, d.HandleLogin)
	mux.HandleFunc(Register, d.HandleRegister)
	mux.HandleFunc(Logout, d.HandleLogout)
	mux.HandleFunc(Me, d.HandleMe)
	mux.HandleFunc(Predict, d.HandlePredict)
	mux.HandleFunc(DeleteRecord, d.HandleDeleteRecord)
}

func (d *Dashboard) HandleIndex(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, readSession(r), page{})
}

func (d *Dashboard) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	token, err := d.api.Login(r.Context(), username, password)
	if err != nil {
		d.fail(w, r, session{}, "Login failed", err, Login)
		return
	}

	// the API is the source of truth for the name shown
	if profile, err := d.api.Me(r.Context(), token.AccessToken); err == nil {
		username = profile.Username
	}

	sess := session{token: token.AccessToken, username: username}
	d.writeSession(w, sess)
	d.render(w, r, sess, page{Flash: &flash{Kind: "success", Text: "Login success."}})
}

func (d *Dashboard) HandleRegister(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if err := d.api.Register(r.Context(), username, password); err != nil {
		d.fail(w, r, readSession(r), "Register failed", err, Register)
		return
	}

	d.logs.Infow("account created", "username", username, "handler", Register)
	d.render(w, r, readSession(r), page{Flash: &flash{Kind: "success", Text: "Account created. You can now login."}})
}

func (d *Dashboard) HandleLogout(w http.ResponseWriter, r *http.Request) {
	d.clearSession(w)
	d.render(w, r, session{}, page{Flash: &flash{Kind: "success", Text: "Logged out."}})
}

func (d *Dashboard) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	profile, err := d.api.Me(r.Context(), sess.token)
	if err != nil {
		d.fail(w, r, sess, "Failed to fetch user info", err, Me)
		return
	}

	// an active session gets its expiry pushed out; the old token stays usable
	// until then, so a failed refresh is not shown
	fresh, err := d.api.Refresh(r.Context(), sess.token)
	if err != nil {
		d.logs.Errorw("failed to refresh session token",
			"error", err,
			"username", profile.Username,
			"handler", Me,
			"request_id", middleware.RequestID(r.Context()))
	} else {
		sess.token = fresh.AccessToken
		sess.username = profile.Username
		d.writeSession(w, sess)
	}

	d.render(w, r, sess, page{Profile: &profile})
}

func (d *Dashboard) HandlePredict(w http.ResponseWriter, r *http.Request) {
	sess, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	form := predictForm{
		Suburb:        strings.TrimSpace(r.PostFormValue("suburb")),
		PropertyType:  r.PostFormValue("property_type"),
		Bedrooms:      r.PostFormValue("bedrooms"),
		Bathrooms:     r.PostFormValue("bathrooms"),
		Parking:       r.PostFormValue("parking"),
		LandSize:      r.PostFormValue("land_size"),
		BuildingSize:  r.PostFormValue("building_size"),
		Postcode:      strings.TrimSpace(r.PostFormValue("postcode")),
		SchoolsNearby: r.PostFormValue("schools_nearby"),
	}

	features, err := form.features()
	if err != nil {
		d.render(w, r, sess, page{Form: form, Flash: &flash{Kind: "error", Text: "Could not call API: " + err.Error()}})
		return
	}

	record, err := d.api.Predict(r.Context(), sess.token, features)
	if err != nil {
		d.failWithForm(w, r, sess, "Could not call API", err, Predict, form)
		return
	}

	d.render(w, r, sess, page{Form: form, Prediction: &record})
}

func (d *Dashboard) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	sess, ok := d.requireSession(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil || id == 0 {
		d.render(w, r, sess, page{Flash: &flash{Kind: "error", Text: "Failed to delete: invalid record id"}})
		return
	}

	if err := d.api.Delete(r.Context(), sess.token, uint(id)); err != nil {
		d.fail(w, r, sess, "Failed to delete", err, DeleteRecord)
		return
	}

	d.render(w, r, sess, page{Flash: &flash{Kind: "success", Text: "Record deleted."}})
}

func (d *Dashboard) requireSession(w http.ResponseWriter, r *http.Request) (session, bool) {
	sess := readSession(r)
	if sess.token == "" {
		d.render(w, r, sess, page{Flash: &flash{Kind: "error", Text: "Please log in first."}})
		return sess, false
	}
	return sess, true
}

func (d *Dashboard) fail(w http.ResponseWriter, r *http.Request, sess session, prefix string, err error, route string) {
	d.failWithForm(w, r, sess, prefix, err, route, predictForm{})
}

// failWithForm shows err inline. An API 401 means the stored token is no longer
// good, so the session is dropped.
func (d *Dashboard) failWithForm(w http.ResponseWriter, r *http.Request, sess session, prefix string, err error, route string, form predictForm) {
	d.logs.Errorw("dashboard action failed",
		"error", err,
		"username", sess.username,
		"handler", route,
		"request_id", middleware.RequestID(r.Context()))

	text := prefix + ": " + err.Error()
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		text = prefix + ": the API is unreachable, try again later"
	}
	if sess.token != "" && apiclient.IsStatus(err, http.StatusUnauthorized) {
		d.clearSession(w)
		sess = session{}
		text = prefix + ": your session has expired, please log in again"
	}

	d.render(w, r, sess, page{Form: form, Flash: &flash{Kind: "error", Text: text}})
}

func (d *Dashboard) render(w http.ResponseWriter, r *http.Request, sess session, p page) {
	p.LoggedIn = sess.token != ""
	p.Username = sess.username
	p.PropertyTypes = propertyTypes
	if p.Form == (predictForm{}) {
		p.Form = defaultForm()
	}

	if p.LoggedIn {
		records, err := d.api.Records(r.Context(), sess.token)
		if err != nil {
			d.logs.Errorw("failed to load history",
				"error", err,
				"username", sess.username,
				"request_id", middleware.RequestID(r.Context()))
			if p.Flash == nil {
				p.Flash = &flash{Kind: "error", Text: "Error loading history: " + err.Error()}
			}
		}
		p.Records = records
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.tmpl.Execute(w, p); err != nil {
		d.logs.Errorw("failed to render dashboard",
			"error", err,
			"request_id", middleware.RequestID(r.Context()))
	}
}

func readSession(r *http.Request) session {
	var sess session
	if c, err := r.Cookie(tokenCookie); err == nil {
		sess.token = c.Value
	}
	if c, err := r.Cookie(userCookie); err == nil {
		sess.username = c.Value
	}
	return sess
}

func (d *Dashboard) writeSession(w http.ResponseWriter, sess session) {
	http.SetCookie(w, d.cookie(tokenCookie, sess.token, 0))
	http.SetCookie(w, d.cookie(userCookie, sess.username, 0))
}

func (d *Dashboard) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, d.cookie(tokenCookie, "", -1))
	http.SetCookie(w, d.cookie(userCookie, "", -1))
}

func (d *Dashboard) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   d.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (f predictForm) features() (predict.Features, error) {
	var (
		features = predict.Features{
			Suburb:       f.Suburb,
			PropertyType: f.PropertyType,
			Postcode:     f.Postcode,
		}
		err error
	)

	ints := []struct {
		name string
		raw  string
		dest *int
	}{
		{"bedrooms", f.Bedrooms, &features.Bedrooms},
		{"bathrooms", f.Bathrooms, &features.Bathrooms},
		{"parking", f.Parking, &features.Parking},
		{"schools_nearby", f.SchoolsNearby, &features.SchoolsNearby},
	}
	for _, field := range ints {
		if *field.dest, err = strconv.Atoi(strings.TrimSpace(field.raw)); err != nil {
			return predict.Features{}, fmt.Errorf("%s must be a whole number", field.name)
		}
	}

	floats := []struct {
		name string
		raw  string
		dest *float64
	}{
		{"land_size", f.LandSize, &features.LandSize},
		{"building_size", f.BuildingSize, &features.BuildingSize},
	}
	for _, field := range floats {
		if *field.dest, err = strconv.ParseFloat(strings.TrimSpace(field.raw), 64); err != nil {
			return predict.Features{}, fmt.Errorf("%s must be a number", field.name)
		}
	}

	return features, nil
}

// formatPrice renders whole dollars with thousands separators.
func formatPrice(price float64) string {
	digits := strconv.FormatFloat(math.Round(price), 'f', 0, 64)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String()
}
