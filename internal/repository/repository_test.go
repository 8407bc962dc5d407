package repository_test

import (
	"context"
	"errors"
	"houseprice/internal/db"
	"houseprice/internal/repository"
	"houseprice/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate the users and predictions tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Prediction{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "hashed_password")
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateStub = func(ctx context.Context, record any) error {
					u := record.(*repository.User)
					u.ID = 3
					return nil
				}
			})

			It("should return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(3)))
				Expect(user.Username).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hashed_password"))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return ErrUserExists", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserFromDB", func() {
		var (
			user     repository.User
			err      error
			username string
		)

		BeforeEach(func() {
			username = "alice"
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserFromDB(ctx, username)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = repository.User{ID: 1, Username: username, PasswordHash: "hashed_password"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal(username))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal(username))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SavePrediction", func() {
		var (
			saved repository.Prediction
			err   error
		)

		JustBeforeEach(func() {
			saved, err = repo.SavePrediction(ctx, repository.Prediction{Suburb: "Box Hill", Price: 1249000})
		})

		When("save succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateStub = func(ctx context.Context, record any) error {
					p := record.(*repository.Prediction)
					p.ID = 11
					return nil
				}
			})

			It("should return the prediction with its id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.ID).To(Equal(uint(11)))
				Expect(saved.Price).To(Equal(1249000.0))
			})
		})

		When("save fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("save prediction")))
			})
		})
	})

	Describe("GetPredictions", func() {
		var (
			predictions []repository.Prediction
			err         error
		)

		JustBeforeEach(func() {
			predictions, err = repo.GetPredictions(ctx)
		})

		When("predictions exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllStub = func(ctx context.Context, orderBy string, dest any) error {
					rows := dest.(*[]repository.Prediction)
					*rows = []repository.Prediction{{ID: 2}, {ID: 1}}
					return nil
				}
			})

			It("should request newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(predictions).To(HaveLen(2))

				Expect(fakeStorage.GetAllCallCount()).To(Equal(1))
				_, orderBy, _ := fakeStorage.GetAllArgsForCall(0)
				Expect(orderBy).To(Equal("id desc"))
			})
		})

		When("no predictions exist", func() {
			It("should return empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(predictions).NotTo(BeNil())
				Expect(predictions).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeletePrediction", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeletePrediction(ctx, 4)
		})

		When("the prediction exists", func() {
			It("should delete it by id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.DeleteByIDCallCount()).To(Equal(1))
				_, model, id := fakeStorage.DeleteByIDArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Prediction{}))
				Expect(id).To(Equal(uint(4)))
			})
		})

		When("the prediction is missing", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(db.ErrNotFound)
			})

			It("should return ErrPredictionNotFound", func() {
				Expect(err).To(MatchError(repository.ErrPredictionNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
