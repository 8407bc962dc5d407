package repository_test

import (
	"context"
	"fmt"
	"houseprice/internal/db"
	"houseprice/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Repository on sqlite", func() {
	var (
		repo    *repository.Repository
		storage *db.GormDB
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()

		storage, err = db.NewGormDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(storage.Close)

		repo = repository.NewRepository(storage)
		Expect(repo.Migrate()).To(Succeed())
	})

	It("rejects a second user with the same username", func() {
		first, err := repo.CreateUser(ctx, "alice", "hash-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(first.ID).NotTo(BeZero())
		Expect(first.CreatedAt).NotTo(BeZero())

		_, err = repo.CreateUser(ctx, "alice", "hash-2")
		Expect(err).To(MatchError(repository.ErrUserExists))

		stored, err := repo.GetUserFromDB(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.PasswordHash).To(Equal("hash-1"))
	})

	It("lists predictions newest first and forgets deleted ones", func() {
		var ids []uint
		for _, suburb := range []string{"Box Hill", "Carlton", "Doncaster"} {
			saved, err := repo.SavePrediction(ctx, repository.Prediction{Suburb: suburb, Price: 1000})
			Expect(err).NotTo(HaveOccurred())
			ids = append(ids, saved.ID)
		}

		Expect(repo.DeletePrediction(ctx, ids[1])).To(Succeed())

		listed, err := repo.GetPredictions(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(listed).To(HaveLen(2))
		Expect(listed[0].ID).To(Equal(ids[2]))
		Expect(listed[1].ID).To(Equal(ids[0]))

		Expect(repo.DeletePrediction(ctx, ids[1])).To(MatchError(repository.ErrPredictionNotFound))
	})
})
