package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ProtectCmd prints the protected form of --value for --purpose.
func ProtectCmd(cmd *cobra.Command, _ []string) error {
	purpose, _ := cmd.Flags().GetString("purpose")
	value, _ := cmd.Flags().GetString("value")

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	protected, err := env.protector.ProtectString(cmd.Context(), purpose, value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), protected)
	return err
}

// UnprotectCmd prints the clear text of a value protected for --purpose.
func UnprotectCmd(cmd *cobra.Command, _ []string) error {
	purpose, _ := cmd.Flags().GetString("purpose")
	value, _ := cmd.Flags().GetString("value")

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	plain, err := env.protector.UnprotectString(cmd.Context(), purpose, value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), plain)
	return err
}

// RotateKeyCmd adds a new protection key; older keys keep decrypting.
func RotateKeyCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.protector.RotateKey(cmd.Context()); err != nil {
		return err
	}
	env.logger.Info("Protection key rotated")
	return nil
}

// InitProtectionCommands registers protect, unprotect and keys rotate.
func InitProtectionCommands(rootCmd *cobra.Command) error {
	protectCmd := &cobra.Command{
		Use:   "protect",
		Short: "Protect a value with the data protection key ring",
		RunE:  ProtectCmd,
	}
	unprotectCmd := &cobra.Command{
		Use:   "unprotect",
		Short: "Reveal a protected value",
		RunE:  UnprotectCmd,
	}
	for _, c := range []*cobra.Command{protectCmd, unprotectCmd} {
		c.Flags().String("purpose", "", "Purpose the value is bound to")
		c.Flags().String("value", "", "Value to transform")
		for _, name := range []string{"purpose", "value"} {
			if err := c.MarkFlagRequired(name); err != nil {
				return err
			}
		}
	}

	rotateCmd := &cobra.Command{
		Use:   "rotate-protection-key",
		Short: "Add a new data protection key",
		RunE:  RotateKeyCmd,
	}

	rootCmd.AddCommand(protectCmd, unprotectCmd, rotateCmd)
	return nil
}
