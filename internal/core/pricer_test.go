package core_test

import (
	"context"
	"errors"
	"houseprice/internal/core"
	"houseprice/internal/core/fake"
	"houseprice/internal/predict"
	"houseprice/internal/repository"
	tokenIssuer "houseprice/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Pricer", func() {
	var (
		fakeRepo      *fake.Repository
		fakeJWT       *fake.JWTIssuer
		fakeEstimator *fake.Estimator
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context
		tokenTTL      time.Duration

		pricer *core.Pricer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeEstimator = new(fake.Estimator)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		tokenTTL = 30 * time.Minute

		pricer = core.NewPricer(fakeLogger, fakeRepo, fakeJWT, fakeEstimator, tokenTTL)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg core.AuthMessage
			err error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{Username: "alice", Password: "s3cret!"}
			fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			fakeRepo.CreateUserReturns(repository.User{ID: 1, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			err = pricer.Register(ctx, msg)
		})

		When("the username is free", func() {
			It("should store a bcrypt hash of the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, hash := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(hash).NotTo(Equal(msg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte(msg.Password))).To(Succeed())
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{ID: 1, Username: "alice"}, nil)
			})

			It("should return ErrUserExists without inserting", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the insert hits the unique constraint", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should return ErrUserExists", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			hashedPassword []byte
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			var hashErr error
			hashedPassword, hashErr = bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			fakeRepo.GetUserFromDBReturns(repository.User{
				ID:           42,
				Username:     "testuser",
				PasswordHash: string(hashedPassword),
			}, nil)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed-token", nil)
		})

		JustBeforeEach(func() {
			token, err = pricer.Authenticate(ctx, authMsg)
		})

		When("the credentials are valid", func() {
			It("should return a token for the username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed-token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					Subject:    "testuser",
					Expiration: tokenTTL,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				authMsg.Password = "wrongpass"
			})

			It("should return ErrIncorrectPassword", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})
		})
	})

	Describe("Identify", func() {
		var (
			username string
			err      error
		)

		BeforeEach(func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "alice"}, nil)
			fakeRepo.GetUserFromDBReturns(repository.User{ID: 3, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			username, err = pricer.Identify(ctx, "bearer-token")
		})

		When("the token is valid and the user exists", func() {
			It("should return the subject", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(username).To(Equal("alice"))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("bearer-token"))
				_, looked := fakeRepo.GetUserFromDBArgsForCall(0)
				Expect(looked).To(Equal("alice"))
			})
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should be unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(fakeRepo.GetUserFromDBCallCount()).To(Equal(0))
			})
		})

		When("the token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"exp": 123.0}, nil)
			})

			It("should be unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(username).To(BeEmpty())
			})
		})

		When("the subject no longer exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should be unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, fakeErr)
			})

			It("should not treat it as an auth failure", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, core.ErrUnauthenticated)).To(BeFalse())
			})
		})
	})

	Describe("Me", func() {
		It("should return the profile", func() {
			created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
			fakeRepo.GetUserFromDBReturns(repository.User{Username: "alice", CreatedAt: created}, nil)

			profile, err := pricer.Me(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(profile).To(Equal(core.UserProfile{Username: "alice", CreatedAt: created}))
		})

		It("should return ErrUserNotFound for unknown users", func() {
			fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := pricer.Me(ctx, "ghost")
			Expect(err).To(MatchError(core.ErrUserNotFound))
		})
	})

	Describe("Refresh", func() {
		It("should issue a new token for the user", func() {
			fakeJWT.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			fakeJWT.SignReturns("fresh-token", nil)

			token, err := pricer.Refresh(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("fresh-token"))
			Expect(fakeJWT.GenerateArgsForCall(0).Subject).To(Equal("alice"))
		})
	})

	Describe("Predict", func() {
		var (
			features predict.Features
			record   core.PredictionRecord
			err      error
			created  time.Time
		)

		BeforeEach(func() {
			created = time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)
			features = predict.Features{
				Suburb:       "Richmond",
				PropertyType: "house",
				Bedrooms:     3,
				Bathrooms:    2,
				Parking:      1,
				LandSize:     450,
				BuildingSize: 120,
				Postcode:     "3121",
			}
			fakeEstimator.EstimateReturns(1249000, nil)
			fakeRepo.SavePredictionStub = func(_ context.Context, p repository.Prediction) (repository.Prediction, error) {
				p.ID = 9
				p.CreatedAt = created
				return p, nil
			}
		})

		JustBeforeEach(func() {
			record, err = pricer.Predict(ctx, features)
		})

		When("the estimate succeeds", func() {
			It("should persist the features with the price", func() {
				Expect(err).NotTo(HaveOccurred())
				_, estimated := fakeEstimator.EstimateArgsForCall(0)
				Expect(estimated).To(Equal(features))

				_, saved := fakeRepo.SavePredictionArgsForCall(0)
				Expect(saved.Price).To(Equal(1249000.0))
				Expect(saved.Suburb).To(Equal("Richmond"))
				Expect(saved.LandSize).To(Equal(450.0))

				Expect(record.ID).To(Equal(uint(9)))
				Expect(record.Price).To(Equal(1249000.0))
				Expect(record.CreatedAt).To(Equal(created))
			})
		})

		When("the features are invalid", func() {
			BeforeEach(func() {
				fakeEstimator.EstimateReturns(0, predict.ErrInvalidFeatures)
			})

			It("should not store anything", func() {
				Expect(err).To(MatchError(predict.ErrInvalidFeatures))
				Expect(fakeRepo.SavePredictionCallCount()).To(Equal(0))
			})
		})

		When("the model artifact is missing", func() {
			BeforeEach(func() {
				fakeEstimator.EstimateReturns(0, predict.ErrArtifactNotFound)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(predict.ErrArtifactNotFound))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeRepo.SavePredictionReturns(repository.Prediction{}, fakeErr)
				fakeRepo.SavePredictionStub = nil
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(record).To(Equal(core.PredictionRecord{}))
			})
		})
	})

	Describe("ListRecords", func() {
		It("should map every stored prediction in order", func() {
			fakeRepo.GetPredictionsReturns([]repository.Prediction{
				{ID: 2, Price: 900000},
				{ID: 1, Price: 700000},
			}, nil)

			records, err := pricer.ListRecords(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].ID).To(Equal(uint(2)))
			Expect(records[1].Price).To(Equal(700000.0))
		})

		It("should return an empty list when nothing is stored", func() {
			fakeRepo.GetPredictionsReturns([]repository.Prediction{}, nil)

			records, err := pricer.ListRecords(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})

		It("should wrap repository errors", func() {
			fakeRepo.GetPredictionsReturns(nil, fakeErr)

			_, err := pricer.ListRecords(ctx)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("DeleteRecord", func() {
		It("should delete by id", func() {
			Expect(pricer.DeleteRecord(ctx, 4)).To(Succeed())
			_, id := fakeRepo.DeletePredictionArgsForCall(0)
			Expect(id).To(Equal(uint(4)))
		})

		It("should return ErrRecordNotFound for a missing id", func() {
			fakeRepo.DeletePredictionReturns(repository.ErrPredictionNotFound)

			Expect(pricer.DeleteRecord(ctx, 4)).To(MatchError(core.ErrRecordNotFound))
		})

		It("should wrap other failures", func() {
			fakeRepo.DeletePredictionReturns(fakeErr)

			Expect(pricer.DeleteRecord(ctx, 4)).To(MatchError(fakeErr))
		})
	})
})
