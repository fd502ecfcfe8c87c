package pwned_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwned"
)

func TestValidatePassword(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.pwnedpasswords.com").
		Get("/pwnedpassword/P@ssword").
		Reply(http.StatusOK).
		BodyString("3861493")
	gock.New("https://api.pwnedpasswords.com").
		Get("/pwnedpassword/unbreached").
		Reply(http.StatusNotFound)

	passwords, err := pwned.NewPasswordClient(pwned.DefaultConfig(), pwned.WithHTTPClient(&http.Client{}))
	require.NoError(t, err)
	v := pwned.NewValidator(passwords, nil)

	err = v.ValidatePassword(context.Background(), "P@ssword")
	var rejected *pwned.PasswordRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, pwned.RejectionCode, rejected.Code)
	assert.Equal(t, int64(3861493), rejected.Count)

	assert.NoError(t, v.ValidatePassword(context.Background(), "unbreached"))
}

func TestBreachesForAccount(t *testing.T) {
	defer gock.Off()

	gock.New("https://haveibeenpwned.com").
		Get("/api/breachedaccount/test@example.com").
		Reply(http.StatusOK).
		BodyString(`[{"Name":"Adobe","IsVerified":true}]`)

	breaches, err := pwned.NewBreachClient(pwned.Config{}, pwned.WithHTTPClient(&http.Client{}))
	require.NoError(t, err)

	got, err := breaches.BreachesForAccount(context.Background(), "test@example.com", pwned.BreachFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pwned.BreachName("Adobe"), got[0].Name)
	assert.True(t, got[0].IsVerified)
}
