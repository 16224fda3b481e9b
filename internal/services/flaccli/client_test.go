package flaccli

import (
	"context"
	"crypto/md5"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func stubCommand(t *testing.T, mode string, capture *[]string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if capture != nil {
			*capture = append([]string(nil), args...)
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FLAC_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() { commandContext = original })
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("FLAC_HELPER_MODE") {
	case "ok":
		os.Exit(0)
	case "warn":
		fmt.Fprintln(os.Stderr, "track.flac: WARNING, unexpected EOF")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "track.flac: ERROR while decoding data")
		fmt.Fprintln(os.Stderr, "               state = FLAC__STREAM_DECODER_ABORTED")
		os.Exit(1)
	case "decode":
		os.Stdout.WriteString("pcm-data")
		os.Exit(0)
	case "decode-fail":
		os.Exit(1)
	default:
		os.Exit(2)
	}
}

func TestNewDefaults(t *testing.T) {
	client := New()
	if client.binary != "flac" || client.compressionLevel != 8 {
		t.Fatalf("unexpected defaults: %+v", client)
	}
}

func TestNewOptions(t *testing.T) {
	client := New(WithBinary("/opt/flac"), WithCompressionLevel(5))
	if client.binary != "/opt/flac" || client.compressionLevel != 5 {
		t.Fatalf("options not applied: %+v", client)
	}
}

func TestWithCompressionLevelIgnoresOutOfRange(t *testing.T) {
	client := New(WithCompressionLevel(12))
	if client.compressionLevel != 8 {
		t.Fatalf("expected out-of-range level to be ignored, got %d", client.compressionLevel)
	}
}

func TestTestPassesWarnAndTestFlags(t *testing.T) {
	var args []string
	stubCommand(t, "ok", &args)

	if _, err := New().Test(context.Background(), "/music/track.flac"); err != nil {
		t.Fatalf("Test returned error: %v", err)
	}
	if len(args) != 2 || args[0] != "-wt" || args[1] != "/music/track.flac" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestTestReturnsStderrOnFailure(t *testing.T) {
	stubCommand(t, "fail", nil)

	stderr, err := New().Test(context.Background(), "/music/track.flac")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(stderr, "FLAC__STREAM_DECODER_ABORTED") {
		t.Fatalf("expected stderr text, got %q", stderr)
	}
}

func TestTestReturnsStderrOnZeroExit(t *testing.T) {
	stubCommand(t, "warn", nil)

	stderr, err := New().Test(context.Background(), "/music/track.flac")
	if err != nil {
		t.Fatalf("Test returned error: %v", err)
	}
	if !strings.Contains(stderr, "WARNING") {
		t.Fatalf("expected warning text on zero exit, got %q", stderr)
	}
}

func TestTestRequiresPath(t *testing.T) {
	if _, err := New().Test(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestDecodeMD5HashesStream(t *testing.T) {
	var args []string
	stubCommand(t, "decode", &args)

	sum, err := New().DecodeMD5(context.Background(), "/music/track.flac")
	if err != nil {
		t.Fatalf("DecodeMD5 returned error: %v", err)
	}
	if sum != md5.Sum([]byte("pcm-data")) {
		t.Fatalf("unexpected hash: %x", sum)
	}
	want := []string{"-d", "-s", "--stdout", "--force-raw-format", "--endian=little", "--sign=signed", "/music/track.flac"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDecodeMD5ReportsDecoderFailure(t *testing.T) {
	stubCommand(t, "decode-fail", nil)

	if _, err := New().DecodeMD5(context.Background(), "/music/track.flac"); err == nil {
		t.Fatal("expected error for failed decode")
	}
}

func TestEncodeBuildsCompressionArgs(t *testing.T) {
	var args []string
	stubCommand(t, "ok", &args)

	if _, err := New(WithCompressionLevel(6)).Encode(context.Background(), "/a.corrupted", "/a.flac"); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := []string{"-6", "/a.corrupted", "-o", "/a.flac"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestEncodeFailureIncludesOutput(t *testing.T) {
	stubCommand(t, "fail", nil)

	output, err := New().Encode(context.Background(), "/a.corrupted", "/a.flac")
	if err == nil {
		t.Fatal("expected error for failed encode")
	}
	if !strings.Contains(output, "ERROR") {
		t.Fatalf("expected tool output, got %q", output)
	}
}
