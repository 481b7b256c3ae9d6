package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/register", doRegister)
			auth.Post("/login", doLogin)
		}

		complaints := api.Group("/complaints").Name("Complaints API")
		{
			complaints.Post("/", createComplaint)
			complaints.Get("/", listComplaint)
			complaints.Get("/my", listMyComplaint)
			complaints.Put("/:complaintId/status", updateComplaintStatus)
			complaints.Delete("/:complaintId", deleteComplaint)
			complaints.Post("/:complaintId/agree", agreeComplaint)
			complaints.Post("/:complaintId/disagree", disagreeComplaint)
			complaints.Post("/:complaintId/comment", commentComplaint)
		}

		feedback := api.Group("/feedback").Name("Feedback API")
		{
			feedback.Post("/", createPoll)
			feedback.Get("/", listPoll)
			feedback.Get("/:pollId", getPoll)
			feedback.Post("/:pollId/rate", ratePoll)
			feedback.Put("/:pollId/toggle", togglePoll)
			feedback.Delete("/:pollId", deletePoll)
		}
	}
}
