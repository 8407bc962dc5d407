package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"houseprice/internal/apiclient"
	"houseprice/internal/core"
	"houseprice/internal/dashboard"
	"houseprice/internal/dashboard/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Dashboard", func() {
	var (
		fakeAPI *fake.APIClient
		mux     *http.ServeMux
		w       *httptest.ResponseRecorder
	)

	post := func(path string, form url.Values, token string) *http.Request {
		req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if token != "" {
			req.AddCookie(&http.Cookie{Name: "hp_token", Value: token})
			req.AddCookie(&http.Cookie{Name: "hp_user", Value: "alice"})
		}
		return req
	}

	cookie := func(name string) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == name {
				return c
			}
		}
		return nil
	}

	BeforeEach(func() {
		fakeAPI = new(fake.APIClient)
		fakeAPI.RecordsReturns([]core.PredictionRecord{}, nil)

		d, err := dashboard.New(zap.NewNop().Sugar(), fakeAPI, false)
		Expect(err).NotTo(HaveOccurred())
		mux = http.NewServeMux()
		d.Routes(mux)
		w = httptest.NewRecorder()
	})

	Describe("index", func() {
		It("should show the login forms to anonymous visitors", func() {
			mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Not logged in."))
			Expect(w.Body.String()).NotTo(ContainSubstring("Predict Price"))
			Expect(fakeAPI.RecordsCallCount()).To(Equal(0))
		})

		It("should list the history newest first for a session", func() {
			fakeAPI.RecordsReturns([]core.PredictionRecord{
				{ID: 8, Suburb: "Fitzroy", Price: 1500000, CreatedAt: time.Now()},
				{ID: 3, Suburb: "Carlton", Price: 990000, CreatedAt: time.Now()},
			}, nil)
			req := httptest.NewRequest("GET", "/", nil)
			req.AddCookie(&http.Cookie{Name: "hp_token", Value: "tok"})
			req.AddCookie(&http.Cookie{Name: "hp_user", Value: "alice"})

			mux.ServeHTTP(w, req)

			body := w.Body.String()
			Expect(body).To(ContainSubstring("Logged in as: <strong>alice</strong>"))
			Expect(strings.Index(body, "Fitzroy")).To(BeNumerically("<", strings.Index(body, "Carlton")))
			Expect(body).To(ContainSubstring("1,500,000"))
			Expect(body).To(ContainSubstring(`action="/records/8/delete"`))
		})
	})

	Describe("login", func() {
		It("should store the token and the API username", func() {
			fakeAPI.LoginReturns(apiclient.Token{AccessToken: "tok", TokenType: "bearer"}, nil)
			fakeAPI.MeReturns(core.UserProfile{Username: "alice"}, nil)

			mux.ServeHTTP(w, post("/login", url.Values{"username": {" alice "}, "password": {"s3cret!"}}, ""))

			_, username, password := fakeAPI.LoginArgsForCall(0)
			Expect(username).To(Equal("alice"))
			Expect(password).To(Equal("s3cret!"))
			Expect(cookie("hp_token").Value).To(Equal("tok"))
			Expect(cookie("hp_token").HttpOnly).To(BeTrue())
			Expect(cookie("hp_user").Value).To(Equal("alice"))
			Expect(w.Body.String()).To(ContainSubstring("Login success."))
		})

		It("should show API errors inline", func() {
			fakeAPI.LoginReturns(apiclient.Token{}, &apiclient.APIError{StatusCode: 401, Message: "incorrect username or password"})

			mux.ServeHTTP(w, post("/login", url.Values{"username": {"alice"}, "password": {"nope"}}, ""))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Login failed: incorrect username or password"))
			Expect(cookie("hp_token")).To(BeNil())
		})
	})

	Describe("register", func() {
		It("should confirm the new account", func() {
			mux.ServeHTTP(w, post("/register", url.Values{"username": {"bob"}, "password": {"hunter22"}}, ""))

			Expect(fakeAPI.RegisterCallCount()).To(Equal(1))
			Expect(w.Body.String()).To(ContainSubstring("Account created. You can now login."))
		})

		It("should surface a taken username", func() {
			fakeAPI.RegisterReturns(&apiclient.APIError{StatusCode: 409, Message: "username already registered"})

			mux.ServeHTTP(w, post("/register", url.Values{"username": {"bob"}, "password": {"hunter22"}}, ""))

			Expect(w.Body.String()).To(ContainSubstring("Register failed: username already registered"))
		})

		It("should not leak transport errors", func() {
			fakeAPI.RegisterReturns(errors.New("dial tcp 127.0.0.1:8001: connection refused"))

			mux.ServeHTTP(w, post("/register", url.Values{"username": {"bob"}, "password": {"hunter22"}}, ""))

			Expect(w.Body.String()).To(ContainSubstring("the API is unreachable"))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
		})
	})

	Describe("logout", func() {
		It("should expire the session cookies", func() {
			mux.ServeHTTP(w, post("/logout", nil, "tok"))

			Expect(cookie("hp_token").MaxAge).To(BeNumerically("<", 0))
			Expect(w.Body.String()).To(ContainSubstring("Not logged in."))
		})
	})

	Describe("me", func() {
		It("should show the profile", func() {
			fakeAPI.MeReturns(core.UserProfile{Username: "alice", CreatedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)}, nil)
			req := httptest.NewRequest("GET", "/me", nil)
			req.AddCookie(&http.Cookie{Name: "hp_token", Value: "tok"})

			mux.ServeHTTP(w, req)

			Expect(w.Body.String()).To(ContainSubstring("2025-02-03T04:05:06Z"))
			_, token := fakeAPI.MeArgsForCall(0)
			Expect(token).To(Equal("tok"))
		})

		It("should swap the session token for a fresh one", func() {
			fakeAPI.MeReturns(core.UserProfile{Username: "alice"}, nil)
			fakeAPI.RefreshReturns(apiclient.Token{AccessToken: "fresh", TokenType: "bearer"}, nil)
			req := httptest.NewRequest("GET", "/me", nil)
			req.AddCookie(&http.Cookie{Name: "hp_token", Value: "tok"})

			mux.ServeHTTP(w, req)

			_, token := fakeAPI.RefreshArgsForCall(0)
			Expect(token).To(Equal("tok"))
			Expect(cookie("hp_token").Value).To(Equal("fresh"))
			Expect(cookie("hp_user").Value).To(Equal("alice"))
			_, historyToken := fakeAPI.RecordsArgsForCall(0)
			Expect(historyToken).To(Equal("fresh"))
		})

		It("should keep the old token when the refresh fails", func() {
			fakeAPI.MeReturns(core.UserProfile{Username: "alice"}, nil)
			fakeAPI.RefreshReturns(apiclient.Token{}, errors.New("connection refused"))
			req := httptest.NewRequest("GET", "/me", nil)
			req.AddCookie(&http.Cookie{Name: "hp_token", Value: "tok"})

			mux.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(cookie("hp_token")).To(BeNil())
			Expect(w.Body.String()).To(ContainSubstring("alice"))
		})

		It("should ask anonymous visitors to log in", func() {
			mux.ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))

			Expect(w.Body.String()).To(ContainSubstring("Please log in first."))
			Expect(fakeAPI.MeCallCount()).To(Equal(0))
		})
	})

	Describe("predict", func() {
		var form url.Values

		BeforeEach(func() {
			form = url.Values{
				"suburb":         {"Box Hill"},
				"property_type":  {"House"},
				"bedrooms":       {"3"},
				"bathrooms":      {"2"},
				"parking":        {"1"},
				"land_size":      {"450"},
				"building_size":  {"120"},
				"postcode":       {"3128"},
				"schools_nearby": {"0"},
			}
		})

		It("should show the estimated price", func() {
			fakeAPI.PredictReturns(core.PredictionRecord{ID: 12, Price: 1249000}, nil)

			mux.ServeHTTP(w, post("/predict", form, "tok"))

			Expect(w.Body.String()).To(ContainSubstring("Estimated Price: AUD 1,249,000"))
			Expect(w.Body.String()).To(ContainSubstring("Record ID: 12"))
			_, token, features := fakeAPI.PredictArgsForCall(0)
			Expect(token).To(Equal("tok"))
			Expect(features.Bedrooms).To(Equal(3))
			Expect(features.LandSize).To(Equal(450.0))
			Expect(features.Postcode).To(Equal("3128"))
		})

		It("should reject non numeric input before calling the API", func() {
			form.Set("bedrooms", "three")

			mux.ServeHTTP(w, post("/predict", form, "tok"))

			Expect(fakeAPI.PredictCallCount()).To(Equal(0))
			Expect(w.Body.String()).To(ContainSubstring("bedrooms must be a whole number"))
			Expect(w.Body.String()).To(ContainSubstring(`value="three"`))
		})

		It("should show field errors from the API", func() {
			fakeAPI.PredictReturns(core.PredictionRecord{}, &apiclient.APIError{
				StatusCode: 422,
				Message:    "invalid request payload",
				Details:    map[string]string{"bedrooms": "must be no less than 0"},
			})
			form.Set("bedrooms", "-1")

			mux.ServeHTTP(w, post("/predict", form, "tok"))

			Expect(w.Body.String()).To(ContainSubstring("bedrooms: must be no less than 0"))
		})

		It("should drop an expired session", func() {
			fakeAPI.PredictReturns(core.PredictionRecord{}, &apiclient.APIError{StatusCode: 401, Message: "could not validate credentials"})

			mux.ServeHTTP(w, post("/predict", form, "tok"))

			Expect(w.Body.String()).To(ContainSubstring("your session has expired"))
			Expect(cookie("hp_token").MaxAge).To(BeNumerically("<", 0))
			Expect(fakeAPI.RecordsCallCount()).To(Equal(0))
		})
	})

	Describe("delete", func() {
		It("should delete the record by id", func() {
			mux.ServeHTTP(w, post("/records/7/delete", nil, "tok"))

			_, token, id := fakeAPI.DeleteArgsForCall(0)
			Expect(token).To(Equal("tok"))
			Expect(id).To(Equal(uint(7)))
			Expect(w.Body.String()).To(ContainSubstring("Record deleted."))
		})

		It("should show a missing record inline", func() {
			fakeAPI.DeleteReturns(&apiclient.APIError{StatusCode: 404, Message: "record not found"})

			mux.ServeHTTP(w, post("/records/7/delete", nil, "tok"))

			Expect(w.Body.String()).To(ContainSubstring("Failed to delete: record not found (HTTP 404)"))
		})

		It("should refuse a bad id", func() {
			mux.ServeHTTP(w, post("/records/abc/delete", nil, "tok"))

			Expect(fakeAPI.DeleteCallCount()).To(Equal(0))
			Expect(w.Body.String()).To(ContainSubstring("invalid record id"))
		})
	})
})
