//go:build unit

package account_test

import (
	"testing"

	"helperhub/internal/domain/account"
	"helperhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AccountBuilder)
	errIs  error
}

func TestAccount(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewAccountBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, account.RoleCustomer, actual.Role())
		assert.False(t, actual.IsHelper())
		assert.False(t, actual.IsProfileComplete())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("") },
				errIs:  account.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("invalid-email") },
				errIs:  account.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  account.ErrInvalidEmail,
			},
		})
	})

	t.Run("電話番号検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "国番号付きOK",
				mutate: func(b *builder.AccountBuilder) { b.WithPhone("+91 9876543210") },
			},
			{
				name:   "数字のみOK",
				mutate: func(b *builder.AccountBuilder) { b.WithPhone("9876543210") },
			},
			{
				name:   "空の電話番号NG",
				mutate: func(b *builder.AccountBuilder) { b.WithPhone("") },
				errIs:  account.ErrInvalidPhone,
			},
			{
				name:   "文字混じりNG",
				mutate: func(b *builder.AccountBuilder) { b.WithPhone("98765abcde") },
				errIs:  account.ErrInvalidPhone,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer ロールOK",
				mutate: func(b *builder.AccountBuilder) { b.WithRole("customer") },
			},
			{
				name:   "helper ロールOK",
				mutate: func(b *builder.AccountBuilder) { b.WithRole("helper") },
			},
			{
				name:   "空のロールはcustomer扱い",
				mutate: func(b *builder.AccountBuilder) { b.WithRole("") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.AccountBuilder) { b.WithRole("admin") },
				errIs:  account.ErrInvalidRole,
			},
		})
	})
}

func TestHelperAccount(t *testing.T) {
	t.Run("ヘルパー登録時のデフォルト", func(t *testing.T) {
		email, _ := account.NewEmail("helper@example.com")
		phone, _ := account.NewPhone("+91 9123456780")

		actual := account.NewHelperAccount("Helper", email, phone, "hash", "addr", "Bengaluru", "Karnataka", account.HelperProfile{
			Bio:                "Plumber",
			Services:           []string{"Plumbing"},
			Experience:         3,
			IsIdentityVerified: true, // must be ignored
		})

		p := actual.HelperProfile()
		assert.True(t, actual.IsHelper())
		assert.NotEmpty(t, p.ProfilePicture)
		assert.Equal(t, "Full-time", p.Availability)
		assert.False(t, p.IsIdentityVerified, "verification is never granted at registration")
	})

	t.Run("プロフィール完成判定", func(t *testing.T) {
		actual, err := builder.NewHelperBuilder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, actual.IsProfileComplete())

		incomplete, err := builder.NewHelperBuilder().With(func(b *builder.AccountBuilder) {
			b.Profile.Bio = ""
		}).BuildDomain()
		require.NoError(t, err)
		assert.False(t, incomplete.IsProfileComplete())
	})

	t.Run("プロフィール更新は検証・評価フィールドを保持する", func(t *testing.T) {
		actual, err := builder.NewHelperBuilder().With(func(b *builder.AccountBuilder) {
			b.Profile.AverageRating = 4.5
			b.Profile.NumReviews = 12
			b.Profile.IsIdentityVerified = true
		}).BuildDomain()
		require.NoError(t, err)

		actual.UpdateHelperProfile(account.HelperProfile{
			Bio:                "New bio",
			Services:           []string{"Cleaning"},
			AverageRating:      1.0, // attempted overwrite
			NumReviews:         0,
			IsIdentityVerified: false,
		})

		p := actual.HelperProfile()
		assert.Equal(t, "New bio", p.Bio)
		assert.Equal(t, 4.5, p.AverageRating)
		assert.Equal(t, 12, p.NumReviews)
		assert.True(t, p.IsIdentityVerified)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAccountBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
