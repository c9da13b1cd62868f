//go:build unit

package user_test

import (
	"strings"
	"testing"

	"groomer-crm/internal/domain/user"
	"groomer-crm/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		name, _ := user.NewName("Jamie Groomer")
		email, _ := user.NewEmail("Test@Example.com ")
		actual := user.NewUser(name, email, "hashed_password")

		expected, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.PlanFree, actual.Plan())
		assert.Nil(t, actual.LastLoginAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "100文字OK",
				mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("あ", 100) },
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "101文字NG",
				mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("a", 101) },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("名前変更", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		renamed, _ := user.NewName("  Alex  ")
		later := builder.DefaultNow.Add(1)
		u.Rename(renamed, later)

		assert.Equal(t, "Alex", u.Name().Value())
		assert.Equal(t, later, u.UpdatedAt())
		assert.Equal(t, builder.DefaultNow, u.CreatedAt())
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name  string
		plan  string
		limit int
		errIs error
	}{
		{name: "freeは10件まで", plan: "free", limit: user.FreeClientLimit},
		{name: "proは無制限", plan: "pro", limit: -1},
		{name: "不明なプランNG", plan: "enterprise", errIs: user.ErrInvalidPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := user.NewPlan(tt.plan)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.limit, plan.ClientLimit())
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			if tc.mutate != nil {
				b = b.With(tc.mutate)
			}
			u, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, u)
		})
	}
}
