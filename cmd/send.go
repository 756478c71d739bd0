package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"signal-relay/pkg/common"
	"signal-relay/pkg/httpclient"
	"time"

	"github.com/spf13/cobra"
)

var (
	sendURL     string
	sendData    string
	sendFile    string
	sendTimeout time.Duration
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "POST a JSON signal to a running relay",
	Example: `  signal-relay send --data '{"symbol":"AAPL","action":"buy"}'
  signal-relay send --url http://relay:3000 --file signal.json`,
	RunE: Send,
}

func init() {
	sendCmd.Flags().StringVar(&sendURL, "url", "http://localhost:3000", "base URL of the relay")
	sendCmd.Flags().StringVar(&sendData, "data", "", "signal JSON")
	sendCmd.Flags().StringVar(&sendFile, "file", "", "file holding the signal JSON")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 10*time.Second, "request timeout")
}

// Send forwards the payload bytes untouched; validation is the relay's job.
func Send(cmd *cobra.Command, args []string) error {
	payload, err := sendPayload()
	if err != nil {
		return err
	}

	client := httpclient.New(sendURL, sendTimeout)
	resp, err := client.Post(runContext(cmd), common.SIGNAL_PATH, payload, map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to send signal: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("relay responded with status %d", resp.StatusCode)
	}
	return nil
}

func sendPayload() ([]byte, error) {
	switch {
	case sendData != "" && sendFile != "":
		return nil, errors.New("use either --data or --file, not both")
	case sendData != "":
		return []byte(sendData), nil
	case sendFile != "":
		b, err := os.ReadFile(sendFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", sendFile, err)
		}
		return b, nil
	default:
		return nil, errors.New("a signal is required: pass --data or --file")
	}
}
