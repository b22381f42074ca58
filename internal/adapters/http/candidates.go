package httpadapter

import (
	"context"

	"northstar/internal/api"
	"northstar/internal/domain"
	"northstar/internal/ports"
)

func (s *Server) ListCandidates(ctx context.Context, req api.ListCandidatesRequestObject) (api.ListCandidatesResponseObject, error) {
	filter, page, err := candidateQuery(req.Params)
	if err != nil {
		return nil, err
	}
	res, err := s.candidates.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	out := api.CandidatePage{Items: make([]api.Candidate, len(res.Items)), NextCursor: res.NextCursor}
	for i, c := range res.Items {
		out.Items[i] = toCandidate(c)
	}
	return api.ListCandidates200JSONResponse(out), nil
}

func (s *Server) GetCandidate(ctx context.Context, req api.GetCandidateRequestObject) (api.GetCandidateResponseObject, error) {
	c, contacts, err := s.candidates.Get(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetCandidate200JSONResponse{Candidate: toCandidate(c), Contacts: toContacts(contacts)}, nil
}

func (s *Server) PatchCandidate(ctx context.Context, req api.PatchCandidateRequestObject) (api.PatchCandidateResponseObject, error) {
	b := req.Body
	patch := domain.CandidatePatch{
		Name:            b.Name,
		ProgramName:     b.ProgramName,
		Description:     b.Description,
		SourceURL:       b.SourceUrl,
		Tags:            b.Tags,
		FundingMin:      b.FundingMin,
		FundingMax:      b.FundingMax,
		Currency:        b.Currency,
		Deadline:        b.Deadline,
		ValidationNotes: b.ValidationNotes,
	}
	c, err := s.candidates.Update(ctx, req.Id.String(), b.ExpectedVersion, actorOf(ctx, b.Actor), patch)
	if err != nil {
		return nil, err
	}
	return api.PatchCandidate200JSONResponse(toCandidate(c)), nil
}

func (s *Server) ApproveCandidate(ctx context.Context, req api.ApproveCandidateRequestObject) (api.ApproveCandidateResponseObject, error) {
	c, err := s.decide(ctx, req.Id.String(), domain.StateApproved, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.ApproveCandidate200JSONResponse(toCandidate(c)), nil
}

func (s *Server) RejectCandidate(ctx context.Context, req api.RejectCandidateRequestObject) (api.RejectCandidateResponseObject, error) {
	c, err := s.decide(ctx, req.Id.String(), domain.StateRejected, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.RejectCandidate200JSONResponse(toCandidate(c)), nil
}

func (s *Server) TransitionCandidate(ctx context.Context, req api.TransitionCandidateRequestObject) (api.TransitionCandidateResponseObject, error) {
	b := req.Body
	target, err := domain.ParseState(string(b.TargetState))
	if err != nil {
		return nil, err
	}
	c, err := s.lifecycle.ApplyTransition(ctx, ports.TransitionRequest{
		CandidateID:     req.Id.String(),
		ExpectedVersion: b.ExpectedVersion,
		Target:          target,
		Actor:           actorOf(ctx, b.Actor),
		Reason:          b.Reason,
	})
	if err != nil {
		return nil, err
	}
	return api.TransitionCandidate200JSONResponse(toCandidate(c)), nil
}

func (s *Server) decide(ctx context.Context, id string, target domain.State, b api.DecisionRequest) (domain.Candidate, error) {
	return s.lifecycle.ApplyTransition(ctx, ports.TransitionRequest{
		CandidateID:     id,
		ExpectedVersion: b.ExpectedVersion,
		Target:          target,
		Actor:           actorOf(ctx, b.Actor),
		Reason:          b.Reason,
	})
}

func (s *Server) ListContacts(ctx context.Context, req api.ListContactsRequestObject) (api.ListContactsResponseObject, error) {
	contacts, err := s.candidates.Contacts(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.ListContacts200JSONResponse(toContacts(contacts)), nil
}

func (s *Server) AddContact(ctx context.Context, req api.AddContactRequestObject) (api.AddContactResponseObject, error) {
	b := req.Body
	ct, c, err := s.candidates.AddContact(ctx, req.Id.String(), actorOf(ctx, b.Actor), fromContact(b.Contact))
	if err != nil {
		return nil, err
	}
	return api.AddContact201JSONResponse{Contact: toContact(ct), Version: c.Version}, nil
}

func (s *Server) ListAuditEvents(ctx context.Context, req api.ListAuditEventsRequestObject) (api.ListAuditEventsResponseObject, error) {
	events, err := s.candidates.History(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.ListAuditEvents200JSONResponse(toAuditEvents(events)), nil
}
