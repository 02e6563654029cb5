//go:build unit
// +build unit

package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/cryptography"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommands_RegistersCommandTree(t *testing.T) {
	root := &cobra.Command{Use: "dnt-cli"}
	root.PersistentFlags().String("config", "", "")
	require.NoError(t, InitCommands(root))

	for _, path := range [][]string{
		{"migrate"},
		{"tenant", "add"},
		{"tenant", "list"},
		{"user", "add"},
		{"keys", "rsa"},
		{"protect"},
		{"unprotect"},
		{"rotate-protection-key"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestTenantContext(t *testing.T) {
	ctx := tenantContext(nil)
	assert.Equal(t, context.Background(), ctx)

	tenant := &tenancy.Tenant{Name: "acme"}
	tenant.ID = 4
	ctx = tenantContext(tenant)

	assert.Same(t, tenant, tenancy.FromContext(ctx))
	tenantID := session.FromContext(ctx).TenantID()
	require.NotNil(t, tenantID)
	assert.Equal(t, int64(4), *tenantID)
}

func newTestKeyCommandHandler(t *testing.T) *KeyCommandHandler {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	processor, err := cryptography.NewRSAProcessor(log)
	require.NoError(t, err)
	return &KeyCommandHandler{rsaProcessor: processor, logger: log}
}

func TestGenerateRSAKeysCmd_WritesVerifiedPair(t *testing.T) {
	handler := newTestKeyCommandHandler(t)
	dir := t.TempDir()

	cmd := &cobra.Command{Use: "rsa"}
	cmd.Flags().Int("key-size", 2048, "")
	cmd.Flags().String("key-dir", dir, "")
	cmd.Flags().String("name", "signing", "")

	require.NoError(t, handler.GenerateRSAKeysCmd(cmd, nil))

	privateKey, err := handler.rsaProcessor.ReadPrivateKey(filepath.Join(dir, "signing-private-key.pem"))
	require.NoError(t, err)
	publicKey, err := handler.rsaProcessor.ReadPublicKey(filepath.Join(dir, "signing-public-key.pem"))
	require.NoError(t, err)
	assert.Equal(t, privateKey.PublicKey.N, publicKey.N)
}

func TestVerifyKeyPair_RejectsMismatchedFiles(t *testing.T) {
	handler := newTestKeyCommandHandler(t)
	dir := t.TempDir()

	first, _, err := handler.rsaProcessor.GenerateKeys(2048)
	require.NoError(t, err)
	_, second, err := handler.rsaProcessor.GenerateKeys(2048)
	require.NoError(t, err)

	privatePath := filepath.Join(dir, "a-private-key.pem")
	publicPath := filepath.Join(dir, "b-public-key.pem")
	require.NoError(t, handler.rsaProcessor.SavePrivateKeyToFile(first, privatePath))
	require.NoError(t, handler.rsaProcessor.SavePublicKeyToFile(second, publicPath))

	assert.Error(t, handler.verifyKeyPair(privatePath, publicPath))
	assert.Error(t, handler.verifyKeyPair(privatePath, filepath.Join(dir, "missing.pem")))
}
