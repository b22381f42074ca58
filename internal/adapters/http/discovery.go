package httpadapter

import (
	"context"

	"northstar/internal/api"
	"northstar/internal/domain"
)

func (s *Server) TriggerDiscovery(ctx context.Context, req api.TriggerDiscoveryRequestObject) (api.TriggerDiscoveryResponseObject, error) {
	b := req.Body
	sess, err := s.discovery.Trigger(ctx, fromSessionConfig(b.Config), actorOf(ctx, b.RequestedBy), domain.SessionKind(b.Kind))
	if err != nil {
		return nil, err
	}
	return api.TriggerDiscovery202JSONResponse{
		Body:    toSession(sess),
		Headers: api.TriggerDiscovery202ResponseHeaders{Location: "/discovery-sessions/" + sess.ID},
	}, nil
}

func (s *Server) ListSessions(ctx context.Context, req api.ListSessionsRequestObject) (api.ListSessionsResponseObject, error) {
	filter, err := sessionQuery(req.Params)
	if err != nil {
		return nil, err
	}
	sessions, err := s.discovery.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := api.SessionList{Items: make([]api.Session, len(sessions))}
	for i, sess := range sessions {
		out.Items[i] = toSession(sess)
	}
	return api.ListSessions200JSONResponse(out), nil
}

func (s *Server) GetSession(ctx context.Context, req api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	sess, err := s.discovery.Get(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetSession200JSONResponse(toSession(sess)), nil
}

func (s *Server) CancelSession(ctx context.Context, req api.CancelSessionRequestObject) (api.CancelSessionResponseObject, error) {
	sess, err := s.discovery.Cancel(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.CancelSession200JSONResponse(toSession(sess)), nil
}

func (s *Server) ClaimSession(ctx context.Context, req api.ClaimSessionRequestObject) (api.ClaimSessionResponseObject, error) {
	sess, found, err := s.discovery.Claim(ctx, req.Body.WorkerId)
	if err != nil {
		return nil, err
	}
	if !found {
		return api.ClaimSession204Response{}, nil
	}
	return api.ClaimSession200JSONResponse(toSession(sess)), nil
}

func (s *Server) ReportResults(ctx context.Context, req api.ReportResultsRequestObject) (api.ReportResultsResponseObject, error) {
	sum, err := s.discovery.ReportResult(ctx, req.Id.String(), fromDiscovered(req.Body.Candidates))
	if err != nil {
		return nil, err
	}
	ids := sum.CandidateIDs
	if ids == nil {
		ids = []string{}
	}
	return api.ReportResults200JSONResponse{
		SessionId:    sum.SessionID,
		Created:      sum.Created,
		Updated:      sum.Updated,
		Duplicates:   sum.Duplicates,
		CandidateIds: ids,
	}, nil
}

func (s *Server) CompleteSession(ctx context.Context, req api.CompleteSessionRequestObject) (api.CompleteSessionResponseObject, error) {
	b := req.Body
	sess, err := s.discovery.ReportCompletion(ctx, req.Id.String(), domain.SessionStatus(b.Status), b.Error)
	if err != nil {
		return nil, err
	}
	return api.CompleteSession200JSONResponse(toSession(sess)), nil
}
