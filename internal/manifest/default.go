package manifest

import (
	"modelget/pkg/types"
)

// Default returns the built-in manifest: the model assets the companion
// application expects under its models root. An external manifest file
// replaces it wholesale, there is no merging.
func Default() *types.Manifest {
	return &types.Manifest{
		Groups: []types.AssetGroup{
			{
				Name: "llm",
				Assets: []types.AssetEntry{
					{
						Path: "llm/Meta-Llama-3.1-8B-Instruct-Q4_K_M.gguf",
						URL:  "https://huggingface.co/bartowski/Meta-Llama-3.1-8B-Instruct-GGUF/resolve/main/Meta-Llama-3.1-8B-Instruct-Q4_K_M.gguf?download=true",
					},
				},
			},
			{
				Name: "whisper",
				Assets: []types.AssetEntry{
					{
						Path: "faster-whisper-small/model.bin",
						URL:  "https://huggingface.co/Systran/faster-whisper-small/resolve/main/model.bin?download=true",
					},
					{
						Path: "faster-whisper-small/config.json",
						URL:  "https://huggingface.co/Systran/faster-whisper-small/resolve/main/config.json?download=true",
					},
					{
						Path: "faster-whisper-small/tokenizer.json",
						URL:  "https://huggingface.co/Systran/faster-whisper-small/resolve/main/tokenizer.json?download=true",
					},
					{
						Path: "faster-whisper-small/vocabulary.txt",
						URL:  "https://huggingface.co/Systran/faster-whisper-small/resolve/main/vocabulary.txt?download=true",
					},
				},
			},
			{
				Name: "rvc",
				Assets: []types.AssetEntry{
					{
						Path: "rvc/Chino-Kafuu.pth",
						URL:  "https://huggingface.co/nuponiichan/Chino-Kafuu/resolve/main/Chino-Kafuu.pth?download=true",
					},
					{
						Path: "rvc/Chino-Kafuu.index",
						URL:  "https://huggingface.co/nuponiichan/Chino-Kafuu/resolve/main/Chino-Kafuu.index?download=true",
					},
				},
			},
		},
	}
}
