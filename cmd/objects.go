package cmd

import (
	"fmt"
	"path/filepath"

	"storage-facade/core/storage"
	"storage-facade/feature/objects"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List bucket names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		names, err := a.service.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, names)
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List every object under a prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		files, err := a.service.ListFiles(cmd.Context(), flagString(cmd, "bucket"), argOr(args, 0), flagInt(cmd, "limit"))
		if err != nil {
			return err
		}
		return printJSON(cmd, files)
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a local file",
	Long:  `Uploads a local file. The key defaults to the file name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		dir, name := filepath.Split(args[0])
		body, err := a.service.UploadPath(cmd.Context(), dir, name, flagString(cmd, "bucket"), objects.UploadOptions{
			Key:      flagString(cmd, "key"),
			MimeType: flagString(cmd, "mime"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Pull a remote URL into a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		key, err := a.service.FetchToBucket(cmd.Context(), args[0], flagString(cmd, "bucket"), objects.FetchOptions{
			Key: flagString(cmd, "key"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

var cpCmd = &cobra.Command{
	Use:   "cp <key> <target-key>",
	Short: "Copy an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		return a.service.CopyObject(cmd.Context(), flagString(cmd, "bucket"), args[0], flagString(cmd, "target-bucket"), args[1])
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <key> <target-key>",
	Short: "Move an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		return a.service.MoveObject(cmd.Context(), flagString(cmd, "bucket"), args[0], flagString(cmd, "target-bucket"), args[1])
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <key> <target-key>",
	Short: "Rename an object inside its bucket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		return a.service.RenameObject(cmd.Context(), flagString(cmd, "bucket"), args[0], args[1])
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		return a.service.DeleteObject(cmd.Context(), flagString(cmd, "bucket"), args[0])
	},
}

var findCmd = &cobra.Command{
	Use:   "find <prefix>",
	Short: "Show the first page of objects under a prefix",
	Long:  `Shows the first listing page under the prefix. With --one only its first object is shown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		opts := objects.FindOptions{Limit: flagInt(cmd, "limit")}
		bucket := flagString(cmd, "bucket")

		if one, _ := cmd.Flags().GetBool("one"); one {
			file, err := a.service.FindOneFile(cmd.Context(), bucket, args[0], opts)
			if err != nil {
				return err
			}
			if file == nil {
				return fmt.Errorf("no object starts with %q", args[0])
			}
			return printJSON(cmd, file)
		}

		opts.Prefix = args[0]
		files, err := a.service.FindFiles(cmd.Context(), bucket, opts)
		if err != nil {
			return err
		}
		if files == nil {
			return fmt.Errorf("no object starts with %q", args[0])
		}
		return printJSON(cmd, files)
	},
}

var urlCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print the public URL of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.service.AccessURL(args[0]))
		return nil
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func flagInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func init() {
	for _, c := range []*cobra.Command{bucketsCmd, lsCmd, uploadCmd, fetchCmd, cpCmd, mvCmd, renameCmd, rmCmd, findCmd, urlCmd} {
		RootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{lsCmd, uploadCmd, fetchCmd, cpCmd, mvCmd, renameCmd, rmCmd, findCmd} {
		c.Flags().String("bucket", "", "Bucket (defaults to storage.bucket)")
	}
	for _, c := range []*cobra.Command{lsCmd, findCmd} {
		c.Flags().Int("limit", storage.DefaultLimit, "Listing page size")
	}
	for _, c := range []*cobra.Command{cpCmd, mvCmd} {
		c.Flags().String("target-bucket", "", "Target bucket (defaults to storage.bucket)")
	}

	uploadCmd.Flags().String("key", "", "Object key (defaults to the file name)")
	uploadCmd.Flags().String("mime", "", "Mime type (sniffed when empty)")
	fetchCmd.Flags().String("key", "", "Object key (defaults to the content hash)")
	findCmd.Flags().Bool("one", false, "Show only the first matching object")
}
