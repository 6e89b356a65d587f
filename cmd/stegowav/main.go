// Command stegowav drives the codec core directly against WAV files on
// disk, for offline use without the HTTP server. Flag-driven, structured
// log output — grounded on ausocean-av's cmd/looper and cmd/speaker,
// which use the same flag+log idiom for audio tooling CLIs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Nerggg/audio-stego-core/metrics"
	"github.com/Nerggg/audio-stego-core/models"
	"github.com/Nerggg/audio-stego-core/stego"
	"github.com/Nerggg/audio-stego-core/wavio"
)

func main() {
	var (
		mode      = flag.String("mode", "", "encode|decode|capacity (required)")
		coverPath = flag.String("cover", "", "cover WAV path (encode, capacity)")
		stegoPath = flag.String("stego", "", "stego WAV path (decode) or output path (encode)")
		secretIn  = flag.String("secret-in", "", "secret payload file to embed (encode)")
		secretOut = flag.String("secret-out", "", "path to write extracted payload (decode)")
		algo      = flag.String("algo", "lsb", "lsb|echo|phase|dsss (encode)")
	)
	flag.Parse()

	switch *mode {
	case "capacity":
		runCapacity(*coverPath)
	case "encode":
		runEncode(*coverPath, *stegoPath, *secretIn, *algo)
	case "decode":
		runDecode(*stegoPath, *secretOut)
	default:
		fmt.Fprintln(os.Stderr, "usage: stegowav -mode=encode|decode|capacity ...")
		os.Exit(2)
	}
}

func runCapacity(coverPath string) {
	if coverPath == "" {
		log.Fatal("stegowav: -cover is required for -mode=capacity")
	}
	f, err := os.Open(coverPath)
	if err != nil {
		log.Fatalf("stegowav: open cover: %v", err)
	}
	defer f.Close()

	samples, rate, err := wavio.ReadMono(f)
	if err != nil {
		log.Fatalf("stegowav: read WAV: %v", err)
	}

	cap := stego.Capacity(len(samples))
	log.Printf("[INFO] stegowav: %d samples @ %d Hz — capacity lsb=%d echo=%d phase=%d dsss=%d bytes",
		len(samples), rate, cap.LSBBytes, cap.EchoBytes, cap.PhaseBytes, cap.DSSSBytes)
}

func runEncode(coverPath, outPath, secretPath, algoName string) {
	if coverPath == "" || outPath == "" || secretPath == "" {
		log.Fatal("stegowav: -cover, -stego and -secret-in are required for -mode=encode")
	}

	algo, err := parseAlgo(algoName)
	if err != nil {
		log.Fatalf("stegowav: %v", err)
	}

	cover, err := os.Open(coverPath)
	if err != nil {
		log.Fatalf("stegowav: open cover: %v", err)
	}
	defer cover.Close()
	samples, rate, err := wavio.ReadMono(cover)
	if err != nil {
		log.Fatalf("stegowav: read cover WAV: %v", err)
	}

	payload, err := os.ReadFile(secretPath)
	if err != nil {
		log.Fatalf("stegowav: read secret: %v", err)
	}

	stegoSamples, err := stego.Encode(samples, payload, models.EncodeConfig{Algorithm: algo})
	if err != nil {
		log.Fatalf("stegowav: encode: %v", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("stegowav: create output: %v", err)
	}
	defer out.Close()
	if err := wavio.WriteMono(out, stegoSamples, rate); err != nil {
		log.Fatalf("stegowav: write output WAV: %v", err)
	}

	psnr := metrics.PSNR(samples, stegoSamples)
	log.Printf("[INFO] stegowav: encoded %d payload bytes with %s, PSNR=%.2f dB -> %s",
		len(payload), algo, psnr, outPath)
}

func runDecode(stegoPath, secretOutPath string) {
	if stegoPath == "" {
		log.Fatal("stegowav: -stego is required for -mode=decode")
	}

	f, err := os.Open(stegoPath)
	if err != nil {
		log.Fatalf("stegowav: open stego file: %v", err)
	}
	defer f.Close()
	samples, _, err := wavio.ReadMono(f)
	if err != nil {
		log.Fatalf("stegowav: read stego WAV: %v", err)
	}

	payload, header, err := stego.Decode(samples)
	if err != nil {
		log.Fatalf("stegowav: decode: %v", err)
	}
	log.Printf("[INFO] stegowav: decoded %d bytes using %s", len(payload), header.AlgoID)

	if secretOutPath == "" {
		os.Stdout.Write(payload)
		return
	}
	if err := os.WriteFile(secretOutPath, payload, 0o644); err != nil {
		log.Fatalf("stegowav: write secret: %v", err)
	}
}

func parseAlgo(s string) (models.Algorithm, error) {
	switch s {
	case "lsb":
		return models.AlgoLSB, nil
	case "echo":
		return models.AlgoEcho, nil
	case "phase":
		return models.AlgoPhase, nil
	case "dsss":
		return models.AlgoDSSS, nil
	default:
		return 0, fmt.Errorf("unknown -algo %q", s)
	}
}
