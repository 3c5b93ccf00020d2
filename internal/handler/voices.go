package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Voice is one prebuilt speech-synthesis voice with its catalogue style
// label, as shown in the client's picker.
type Voice struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

var voiceCatalogue = []Voice{
	{Name: "Zephyr", Style: "Bright"},
	{Name: "Puck", Style: "Upbeat"},
	{Name: "Charon", Style: "Informative"},
	{Name: "Kore", Style: "Firm"},
	{Name: "Fenrir", Style: "Excitable"},
	{Name: "Leda", Style: "Youthful"},
	{Name: "Orus", Style: "Firm"},
	{Name: "Aoede", Style: "Breezy"},
	{Name: "Callirrhoe", Style: "Easy-going"},
	{Name: "Autonoe", Style: "Bright"},
	{Name: "Enceladus", Style: "Breathy"},
	{Name: "Iapetus", Style: "Clear"},
	{Name: "Umbriel", Style: "Easy-going"},
	{Name: "Algieba", Style: "Smooth"},
	{Name: "Despina", Style: "Smooth"},
	{Name: "Erinome", Style: "Clear"},
	{Name: "Algenib", Style: "Gravelly"},
	{Name: "Rasalgethi", Style: "Informative"},
	{Name: "Laomedeia", Style: "Upbeat"},
	{Name: "Achernar", Style: "Soft"},
	{Name: "Alnilam", Style: "Firm"},
	{Name: "Schedar", Style: "Even"},
	{Name: "Gacrux", Style: "Mature"},
	{Name: "Pulcherrima", Style: "Forward"},
	{Name: "Achird", Style: "Friendly"},
	{Name: "Zubenelgenubi", Style: "Casual"},
	{Name: "Vindemiatrix", Style: "Gentle"},
	{Name: "Sadachbia", Style: "Lively"},
	{Name: "Sadaltager", Style: "Knowledgeable"},
	{Name: "Sulafat", Style: "Warm"},
}

// Voices lists the prebuilt voices the speech endpoint accepts.
func Voices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": voiceCatalogue})
}
