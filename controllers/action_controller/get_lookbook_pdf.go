package action_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/KP-365/TheWearDeck/middleware"
	"github.com/KP-365/TheWearDeck/models"
)

// GetLookbookPDF godoc
// @Summary Download saved outfits as a PDF lookbook
// @Description Renders every saved outfit with its items and totals into a downloadable PDF
// @Tags Actions
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /saved/lookbook [get]
func (h *Handler) GetLookbookPDF(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}
	userName, _ := middleware.GetUserNameFromContext(c)

	saved, err := h.savedOutfits(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	buf, err := buildLookbookPDF(userName, saved)
	if err != nil {
		log.Printf("[action.lookbook] failed to generate PDF for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate lookbook"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lookbook.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf)
}

func buildLookbookPDF(userName string, outfits []models.SavedOutfit) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("LOOKBOOK", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	subtitle := "Saved outfits"
	if userName != "" {
		subtitle = fmt.Sprintf("Saved outfits for %s", userName)
	}
	m.Row(6, func() {
		m.Col(8, func() {
			m.Text(subtitle, props.Text{
				Size:  10,
				Color: mediumGray,
			})
		})
		m.Col(4, func() {
			m.Text(time.Now().Format("Jan 02, 2006"), props.Text{
				Size:  10,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	for i, outfit := range outfits {
		m.Row(8, func() {
			m.Col(8, func() {
				m.Text(fmt.Sprintf("Outfit %d", i+1), props.Text{
					Size:  13,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(fmt.Sprintf("$%.2f", outfit.TotalPrice), props.Text{
					Size:  13,
					Style: consts.Bold,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})

		for _, item := range outfit.Items {
			brand := ""
			if item.Brand != nil {
				brand = *item.Brand
			}
			m.Row(6, func() {
				m.Col(6, func() {
					m.Text(item.Name, props.Text{
						Size:  9,
						Color: darkGray,
					})
				})
				m.Col(2, func() {
					m.Text(item.Category, props.Text{
						Size:  9,
						Color: mediumGray,
					})
				})
				m.Col(2, func() {
					m.Text(brand, props.Text{
						Size:  9,
						Color: mediumGray,
					})
				})
				m.Col(2, func() {
					m.Text(fmt.Sprintf("$%.2f", item.Price.Float64()), props.Text{
						Size:  9,
						Color: darkGray,
						Align: consts.Right,
					})
				})
			})
		}

		m.Row(6, func() {})
	}

	if len(outfits) == 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("No saved outfits yet. Like an outfit from your feed to see it here.", props.Text{
					Size:  10,
					Color: mediumGray,
				})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
