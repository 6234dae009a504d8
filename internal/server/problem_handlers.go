package server

import (
	"syahi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProblems handles GET /api/problems
func (s *Server) GetProblems(c *fiber.Ctx) error {
	problems, err := s.problemService.List(c.UserContext())
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(problems)
}

// CreateProblem handles POST /api/problems
func (s *Server) CreateProblem(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !parseBody(c, &req) {
		return nil
	}

	problem, err := s.problemService.Create(c.UserContext(), service.CreateProblemInput{
		Author:  author(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(problem)
}

// AddSolace handles POST /api/problems/:id/solace
func (s *Server) AddSolace(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if !parseBody(c, &req) {
		return nil
	}

	problem, err := s.problemService.AddAnswer(c.UserContext(), service.AddAnswerInput{
		Author:    author(c),
		ProblemID: c.Params("id"),
		Content:   req.Content,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(problem)
}

// DeleteProblem handles DELETE /api/problems/:id
func (s *Server) DeleteProblem(c *fiber.Ctx) error {
	err := s.problemService.Delete(c.UserContext(), service.DeleteProblemInput{
		UserID:    userID(c),
		ProblemID: c.Params("id"),
	})
	if err != nil {
		return respond(c, err)
	}
	return deleted(c, "The burden has been erased")
}

// DeleteSolace handles DELETE /api/problems/:id/solace/:answerId
func (s *Server) DeleteSolace(c *fiber.Ctx) error {
	problem, err := s.problemService.DeleteAnswer(c.UserContext(), service.DeleteAnswerInput{
		UserID:    userID(c),
		ProblemID: c.Params("id"),
		AnswerID:  c.Params("answerId"),
	})
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(problem)
}
