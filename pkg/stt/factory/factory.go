package factory

import (
	"fmt"

	"lifemind-be/pkg/stt"
	"lifemind-be/pkg/stt/assemblyai"
	"lifemind-be/pkg/stt/deepgram"
)

func NewSttProvider(providerType, deepgramKey, assemblyAIKey string) (stt.Provider, error) {
	switch providerType {
	case "deepgram":
		return deepgram.NewDeepgramProvider(deepgramKey), nil
	case "assemblyai":
		return assemblyai.NewAssemblyAIProvider(assemblyAIKey), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s", providerType)
	}
}
