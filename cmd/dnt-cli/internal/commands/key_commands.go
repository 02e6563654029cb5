package commands

import (
	"fmt"
	"path/filepath"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/crypto"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/cryptography"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// KeyCommandHandler generates the key material used to sign access tokens.
type KeyCommandHandler struct {
	rsaProcessor crypto.RSAProcessor
	logger       logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and an RSA processor.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &KeyCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateRSAKeysCmd writes an RSA key pair for RS256 access tokens.
func (commandHandler *KeyCommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}

	privateKey, publicKey, err := commandHandler.rsaProcessor.GenerateKeys(keySize)
	if err != nil {
		return err
	}

	privateKeyFilePath := filepath.Join(keyDir, name+"-private-key.pem")
	if err := commandHandler.rsaProcessor.SavePrivateKeyToFile(privateKey, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := filepath.Join(keyDir, name+"-public-key.pem")
	if err := commandHandler.rsaProcessor.SavePublicKeyToFile(publicKey, publicKeyFilePath); err != nil {
		return err
	}

	if err := commandHandler.verifyKeyPair(privateKeyFilePath, publicKeyFilePath); err != nil {
		return err
	}

	commandHandler.logger.Info("Wrote ", privateKeyFilePath, " and ", publicKeyFilePath)
	return nil
}

// verifyKeyPair reads the written files back and checks that a signature of
// the private key verifies with the public key.
func (commandHandler *KeyCommandHandler) verifyKeyPair(privateKeyFilePath, publicKeyFilePath string) error {
	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyFilePath)
	if err != nil {
		return fmt.Errorf("failed to read back private key: %w", err)
	}
	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyFilePath)
	if err != nil {
		return fmt.Errorf("failed to read back public key: %w", err)
	}

	payload := []byte(filepath.Base(privateKeyFilePath))
	signature, err := commandHandler.rsaProcessor.Sign(payload, privateKey)
	if err != nil {
		return fmt.Errorf("failed to sign with the new key: %w", err)
	}
	valid, err := commandHandler.rsaProcessor.Verify(payload, signature, publicKey)
	if err != nil {
		return fmt.Errorf("failed to verify with the new key: %w", err)
	}
	if !valid {
		return fmt.Errorf("key pair mismatch: %s does not verify signatures of %s", publicKeyFilePath, privateKeyFilePath)
	}
	return nil
}

// InitKeyCommands registers the keys command group.
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler: %w", err)
	}

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate key material",
	}

	rsaCmd := &cobra.Command{
		Use:   "rsa",
		Short: "Generate the RSA key pair used for RS256 access tokens",
		RunE:  handler.GenerateRSAKeysCmd,
	}
	rsaCmd.Flags().Int("key-size", crypto.RSAKeySize2048, "RSA key size in bits (2048 to 4096)")
	rsaCmd.Flags().String("key-dir", ".", "Directory to store the RSA keys")
	rsaCmd.Flags().String("name", "jwt", "File name prefix of the key pair")

	keysCmd.AddCommand(rsaCmd)
	rootCmd.AddCommand(keysCmd)
	return nil
}
